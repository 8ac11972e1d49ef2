// Package chatbot is the rule-based in-app assistant: keyword triggers map
// to canned answers about the app's features. Rules run in order and the
// first match wins.
package chatbot

import "strings"

type rule struct {
	triggers []string
	response string
}

var rules = []rule{
	{
		triggers: []string{"hello", "hi", "hey", "kumusta"},
		response: "Hello! I'm True Bayan AI Assistant. I can help you with news, fake news detection, and navigating the app. What would you like to know?",
	},
	{
		triggers: []string{"fake news", "check", "verify"},
		response: "To check if news is fake, you can:\n\n1. Use the 'Report' button on any article\n2. Submit a URL in the Fake News Tracker\n3. Check the confidence score and AI rating shown on articles\n\nOur system analyzes suspicious keywords, source credibility, and writing patterns!",
	},
	{
		triggers: []string{"save", "bookmark"},
		response: "You can save articles by clicking the 'Save' button on any news card. The button will turn green when saved. Click it again to unsave. View all your saved articles in the 'Saved' section!",
	},
	{
		triggers: []string{"category", "categories", "preferences"},
		response: "You can customize your news feed in the Preferences page! We have 12 categories:\n\nPolitics, Business, Technology, Sports, Entertainment, Health, Education, Environment, Crime, Weather, Lifestyle, Food\n\nSelect your interests and your feed will be personalized!",
	},
	{
		triggers: []string{"read", "article"},
		response: "Click the 'Read' button on any article to read it within True Bayan! No ads, no distractions - just clean, easy reading. You can also print or share articles from the reader!",
	},
	{
		triggers: []string{"admin"},
		response: "The admin dashboard lets admins manage users, review fake news reports, and blacklist suspicious sources. Ask your administrator for access if you need it!",
	},
	{
		triggers: []string{"help"},
		response: "Here's what I can help with:\n\n- Finding Philippine news\n- Detecting fake news\n- Saving & organizing articles\n- Setting preferences\n- Reading articles in-app\n- Understanding credibility scores\n\nWhat would you like to know more about?",
	},
	{
		triggers: []string{"thank", "thanks", "salamat"},
		response: "You're very welcome! Glad I could help. Feel free to ask if you need anything else!",
	},
	{
		triggers: []string{"latest", "news"},
		response: "Check out the Dashboard for the latest Philippine news! We have:\n\n- Top Headlines\n- Personalized for You\n- Latest News\n\nAll filtered to show only Philippine-related stories!",
	},
}

const fallbackResponse = "I can help you with:\n\n- News browsing\n- Fake news detection\n- Saving articles\n- App navigation\n- Setting preferences\n\nCould you please ask about a specific topic?"

// Reply matches the lowercased message against the rule table.
func Reply(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(msg, trigger) {
				return r.response
			}
		}
	}
	return fallbackResponse
}
