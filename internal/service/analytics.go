package service

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
)

var (
	// StudentFeatures are account fields every enrolled student has.
	StudentFeatures = []string{"username", "first_name", "last_name", "is_staff", "email"}
	// ProfileFeatures are optional fields from the student profile.
	ProfileFeatures = []string{"name", "language", "location", "year_of_birth", "gender", "level_of_education", "mailing_address", "goals"}
	// AvailableFeatures is everything the profile listing can return.
	AvailableFeatures = slices.Concat(StudentFeatures, ProfileFeatures)
	// QueryFeatures is what the profile listing actually asks for.
	QueryFeatures = []string{"username", "name", "email", "language", "location", "year_of_birth", "gender", "level_of_education", "mailing_address", "goals"}

	// AvailableProfileFeatures can be aggregated into distributions.
	AvailableProfileFeatures = []string{"gender", "level_of_education", "year_of_birth"}
	// DisplayNames labels distribution features for humans.
	DisplayNames = map[string]string{
		"gender":             "Gender",
		"level_of_education": "Level of Education",
		"year_of_birth":      "Year Of Birth",
	}
)

// ParseFeatures reads the features parameter: a JSON list of names, a JSON
// string, or a single bare name. Every name must be a distribution feature.
func ParseFeatures(raw string) ([]string, error) {
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			features = []string{single}
		} else {
			features = []string{strings.TrimSpace(raw)}
		}
	}
	for _, feature := range features {
		if !slices.Contains(AvailableProfileFeatures, feature) {
			return nil, invalidParameter("feature", feature)
		}
	}
	return features, nil
}

// StudentProfiles is the profile listing for a course.
type StudentProfiles struct {
	Students          []map[string]any
	QueriedFeatures   []string
	AvailableFeatures []string
}

// Distributions holds per-feature results for a set of queried features.
type Distributions struct {
	QueriedFeatures   []string
	AvailableFeatures []string
	DisplayNames      map[string]string
	Results           map[string]*client.ProfileDistribution
}

// AnalyticsManager reads course analytics from the LMS.
type AnalyticsManager struct {
	analytics client.AnalyticsClient
}

// NewAnalyticsManager creates a new AnalyticsManager.
func NewAnalyticsManager(analytics client.AnalyticsClient) *AnalyticsManager {
	return &AnalyticsManager{analytics: analytics}
}

func (am *AnalyticsManager) GradingConfig(ctx context.Context, courseID string) (string, error) {
	return am.analytics.GradingContext(ctx, courseID)
}

// EnrolledStudentProfiles lists enrolled students with QueryFeatures.
func (am *AnalyticsManager) EnrolledStudentProfiles(ctx context.Context, courseID string) (*StudentProfiles, error) {
	students, err := am.analytics.EnrolledStudentProfiles(ctx, courseID, QueryFeatures)
	if err != nil {
		return nil, err
	}
	return &StudentProfiles{
		Students:          students,
		QueriedFeatures:   QueryFeatures,
		AvailableFeatures: AvailableFeatures,
	}, nil
}

// ProfileDistributions fetches a distribution for each already validated feature.
func (am *AnalyticsManager) ProfileDistributions(ctx context.Context, courseID string, features []string) (*Distributions, error) {
	results := make(map[string]*client.ProfileDistribution, len(features))
	for _, feature := range features {
		dist, err := am.analytics.ProfileDistribution(ctx, courseID, feature)
		if err != nil {
			return nil, err
		}
		results[feature] = dist
	}
	return &Distributions{
		QueriedFeatures:   features,
		AvailableFeatures: AvailableProfileFeatures,
		DisplayNames:      DisplayNames,
		Results:           results,
	}, nil
}
