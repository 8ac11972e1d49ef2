package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// InsertReport appends a fake-news report. No uniqueness: repeat submissions
// for the same URL each get a row.
func (s *Store) InsertReport(report *FakeNewsReport) error {
	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now()
	}
	return s.DB.Create(report).Error
}

// sourceAverage recomputes the running average from the stored totals, so
// the formula (avg*count + new) / (count+1) holds exactly.
func sourceAverage(totalConfidence, reportCount int) float64 {
	if reportCount <= 0 {
		return 0
	}
	return float64(totalConfidence) / float64(reportCount)
}

// RecordSourceReport folds one report's confidence into the per-domain
// reputation row, creating it on the first report for that domain.
func (s *Store) RecordSourceReport(domain, sourceURL string, confidence int) error {
	var source FakeNewsSource
	err := s.DB.Where("domain = ?", domain).First(&source).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		source = FakeNewsSource{
			Domain:          domain,
			SourceURL:       sourceURL,
			ReportCount:     1,
			TotalConfidence: confidence,
			AvgConfidence:   float64(confidence),
			LastReported:    time.Now(),
		}
		return s.DB.Create(&source).Error
	}
	if err != nil {
		return err
	}

	source.TotalConfidence += confidence
	source.ReportCount++
	source.AvgConfidence = sourceAverage(source.TotalConfidence, source.ReportCount)
	source.LastReported = time.Now()
	return s.DB.Save(&source).Error
}

// UserReports lists the user's own reports, newest first.
func (s *Store) UserReports(userID uint, limit int) ([]FakeNewsReport, error) {
	var out []FakeNewsReport
	err := s.DB.Where("user_id = ?", userID).
		Order("reported_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// TrendingSources lists the most-reported domains.
func (s *Store) TrendingSources(limit int) ([]FakeNewsSource, error) {
	var out []FakeNewsSource
	err := s.DB.Order("report_count DESC").
		Order("avg_confidence DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ReportStats summarizes one user's reporting activity for the tracker page.
type ReportStats struct {
	TotalReports  int64   `json:"totalReports"`
	AvgConfidence float64 `json:"avgConfidence"`
	HighRiskCount int64   `json:"highRiskCount"`
}

// UserReportStats counts the user's reports, their average confidence, and
// how many crossed the high-risk threshold (confidence >= 70).
func (s *Store) UserReportStats(userID uint) (ReportStats, error) {
	var stats ReportStats

	if err := s.DB.Model(&FakeNewsReport{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalReports).Error; err != nil {
		return stats, err
	}

	if stats.TotalReports > 0 {
		var avg struct{ Avg float64 }
		if err := s.DB.Model(&FakeNewsReport{}).
			Select("AVG(confidence_score) AS avg").
			Where("user_id = ?", userID).
			Scan(&avg).Error; err != nil {
			return stats, err
		}
		stats.AvgConfidence = avg.Avg
	}

	if err := s.DB.Model(&FakeNewsReport{}).
		Where("user_id = ? AND confidence_score >= ?", userID, 70).
		Count(&stats.HighRiskCount).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// ReportWithUser is a report row joined with the reporter's username, for
// the admin view.
type ReportWithUser struct {
	FakeNewsReport
	Username string `json:"username"`
}

// AllReportsWithUsernames joins every report with its reporter.
func (s *Store) AllReportsWithUsernames() ([]ReportWithUser, error) {
	var out []ReportWithUser
	err := s.DB.Model(&FakeNewsReport{}).
		Select("fake_news_reports.*, users.username").
		Joins("JOIN users ON users.id = fake_news_reports.user_id").
		Order("fake_news_reports.reported_at DESC").
		Scan(&out).Error
	return out, err
}

// AllSources lists every reported domain, most-reported first.
func (s *Store) AllSources() ([]FakeNewsSource, error) {
	var out []FakeNewsSource
	err := s.DB.Order("report_count DESC").
		Order("avg_confidence DESC").
		Find(&out).Error
	return out, err
}

// SetSourceBlacklist flips the blacklist flag on a source.
func (s *Store) SetSourceBlacklist(sourceID uint, blacklisted bool) error {
	return s.DB.Model(&FakeNewsSource{}).
		Where("id = ?", sourceID).
		Update("is_blacklisted", blacklisted).Error
}

// AdminTotals are the headline numbers on the admin dashboard.
type AdminTotals struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalReports       int64 `json:"totalReports"`
	BlacklistedSources int64 `json:"blacklistedSources"`
	TotalSaved         int64 `json:"totalSaved"`
}

func (s *Store) AdminStats() (AdminTotals, error) {
	var totals AdminTotals
	if err := s.DB.Model(&User{}).Count(&totals.TotalUsers).Error; err != nil {
		return totals, err
	}
	if err := s.DB.Model(&FakeNewsReport{}).Count(&totals.TotalReports).Error; err != nil {
		return totals, err
	}
	if err := s.DB.Model(&FakeNewsSource{}).Where("is_blacklisted = ?", true).Count(&totals.BlacklistedSources).Error; err != nil {
		return totals, err
	}
	if err := s.DB.Model(&SavedArticle{}).Count(&totals.TotalSaved).Error; err != nil {
		return totals, err
	}
	return totals, nil
}
