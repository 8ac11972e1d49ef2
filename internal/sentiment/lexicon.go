package sentiment

type entry struct {
	polarity     float64
	subjectivity float64
}

// lexicon is a compact pattern-style word list tuned for news text. Values
// follow the usual convention: evaluative adjectives are subjective, factual
// or hedging vocabulary is not.
var lexicon = map[string]entry{
	// strongly positive
	"amazing":     {0.9, 0.9},
	"awesome":     {0.9, 0.9},
	"excellent":   {0.9, 0.8},
	"fantastic":   {0.9, 0.9},
	"incredible":  {0.9, 0.9},
	"outstanding": {0.9, 0.8},
	"perfect":     {0.9, 0.9},
	"wonderful":   {0.9, 0.9},
	"best":        {0.8, 0.7},
	"brilliant":   {0.8, 0.8},
	"love":        {0.8, 0.8},
	"miracle":     {0.8, 0.9},
	"triumph":     {0.8, 0.7},

	// positive
	"good":       {0.6, 0.6},
	"great":      {0.7, 0.7},
	"happy":      {0.7, 0.8},
	"beautiful":  {0.7, 0.8},
	"celebrate":  {0.6, 0.6},
	"success":    {0.6, 0.5},
	"successful": {0.6, 0.5},
	"win":        {0.5, 0.4},
	"strong":     {0.4, 0.4},
	"hope":       {0.4, 0.5},
	"improve":    {0.4, 0.3},
	"improved":   {0.4, 0.3},
	"growth":     {0.3, 0.2},
	"gain":       {0.3, 0.2},
	"recovery":   {0.3, 0.2},
	"safe":       {0.3, 0.3},
	"benefit":    {0.3, 0.3},
	"support":    {0.2, 0.2},
	"stable":     {0.2, 0.2},

	// strongly negative
	"horrific":    {-0.9, 0.9},
	"horrible":    {-0.9, 0.9},
	"terrible":    {-0.9, 0.9},
	"disgusting":  {-0.9, 0.9},
	"outrageous":  {-0.9, 0.9},
	"catastrophe": {-0.9, 0.8},
	"disastrous":  {-0.8, 0.8},
	"worst":       {-0.8, 0.8},
	"evil":        {-0.8, 0.9},
	"hate":        {-0.8, 0.9},
	"corrupt":     {-0.7, 0.8},
	"scandal":     {-0.6, 0.7},
	"fraud":       {-0.7, 0.7},
	"lies":        {-0.7, 0.8},
	"lying":       {-0.7, 0.8},
	"shocking":    {-0.6, 0.9},
	"scary":       {-0.6, 0.8},
	"terrifying":  {-0.7, 0.9},
	"dangerous":   {-0.6, 0.6},
	"deadly":      {-0.6, 0.5},

	// negative
	"bad":       {-0.6, 0.7},
	"crisis":    {-0.5, 0.4},
	"disaster":  {-0.6, 0.5},
	"tragedy":   {-0.6, 0.5},
	"tragic":    {-0.6, 0.6},
	"violence":  {-0.5, 0.4},
	"violent":   {-0.5, 0.5},
	"threat":    {-0.4, 0.4},
	"fear":      {-0.5, 0.6},
	"panic":     {-0.5, 0.6},
	"angry":     {-0.5, 0.7},
	"anger":     {-0.5, 0.6},
	"outrage":   {-0.6, 0.8},
	"failure":   {-0.5, 0.5},
	"failed":    {-0.4, 0.4},
	"collapse":  {-0.4, 0.3},
	"decline":   {-0.3, 0.2},
	"loss":      {-0.3, 0.2},
	"losses":    {-0.3, 0.2},
	"weak":      {-0.3, 0.4},
	"warning":   {-0.3, 0.3},
	"concern":   {-0.2, 0.3},
	"concerns":  {-0.2, 0.3},
	"problem":   {-0.3, 0.3},
	"problems":  {-0.3, 0.3},
	"damage":    {-0.4, 0.3},
	"dead":      {-0.4, 0.2},
	"death":     {-0.4, 0.2},
	"killed":    {-0.5, 0.3},
	"injured":   {-0.4, 0.2},
	"victims":   {-0.4, 0.3},
	"attack":    {-0.4, 0.3},
	"war":       {-0.4, 0.3},
	"conflict":  {-0.3, 0.3},
	"poverty":   {-0.4, 0.3},
	"shortage":  {-0.3, 0.2},
	"suffering": {-0.5, 0.5},

	// evaluative but mild, mostly subjectivity signal
	"interesting": {0.4, 0.7},
	"exciting":    {0.5, 0.8},
	"surprising":  {0.1, 0.8},
	"unusual":     {0.0, 0.6},
	"remarkable":  {0.5, 0.8},
	"important":   {0.3, 0.6},
	"significant": {0.2, 0.5},
	"major":       {0.1, 0.4},
	"massive":     {0.0, 0.6},
	"huge":        {0.1, 0.6},
	"big":         {0.1, 0.4},
	"serious":     {-0.2, 0.5},
	"controversy": {-0.3, 0.6},
	"believe":     {0.0, 0.7},
	"think":       {0.0, 0.6},
	"feel":        {0.0, 0.7},
	"opinion":     {0.0, 0.8},
	"allegedly":   {0.0, 0.6},
	"claims":      {0.0, 0.5},
	"rumor":       {-0.2, 0.7},
	"rumors":      {-0.2, 0.7},

	// factual / hedged vocabulary, objective register
	"said":       {0.0, 0.1},
	"stated":     {0.0, 0.1},
	"reported":   {0.0, 0.1},
	"announced":  {0.0, 0.1},
	"according":  {0.0, 0.1},
	"confirmed":  {0.1, 0.2},
	"official":   {0.0, 0.1},
	"officials":  {0.0, 0.1},
	"data":       {0.0, 0.1},
	"figures":    {0.0, 0.1},
	"percent":    {0.0, 0.1},
	"estimated":  {0.0, 0.2},
	"approved":   {0.1, 0.2},
	"signed":     {0.0, 0.1},
	"scheduled":  {0.0, 0.1},
	"measured":   {0.0, 0.2},
	"recorded":   {0.0, 0.1},
	"published":  {0.0, 0.1},
	"statement":  {0.0, 0.1},
	"spokesman":  {0.0, 0.1},
	"ministry":   {0.0, 0.1},
	"department": {0.0, 0.1},
}
