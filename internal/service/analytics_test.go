package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr string
	}{
		{"json list", `["gender","year_of_birth"]`, []string{"gender", "year_of_birth"}, ""},
		{"bare name", "level_of_education", []string{"level_of_education"}, ""},
		{"json string", `"gender"`, []string{"gender"}, ""},
		{"unknown json string", `"goals"`, nil, "Unrecognized feature 'goals'"},
		{"empty list", `[]`, []string{}, ""},
		{"unknown bare", "shoe_size", nil, "Unrecognized feature 'shoe_size'"},
		{"unknown in list", `["gender","goals"]`, nil, "Unrecognized feature 'goals'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFeatures(tt.raw)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableFeatures(t *testing.T) {
	assert.Len(t, AvailableFeatures, len(StudentFeatures)+len(ProfileFeatures))
	for _, feature := range QueryFeatures {
		assert.Contains(t, AvailableFeatures, feature)
	}
}

func TestGradingConfig(t *testing.T) {
	ctx := context.Background()
	lms := new(MockLMSClient)
	am := NewAnalyticsManager(lms)
	lms.On("GradingContext", ctx, testCourseID).Return("Homework 50%, Exam 50%", nil)

	summary, err := am.GradingConfig(ctx, testCourseID)
	require.NoError(t, err)
	assert.Equal(t, "Homework 50%, Exam 50%", summary)
}

func TestEnrolledStudentProfiles(t *testing.T) {
	ctx := context.Background()
	lms := new(MockLMSClient)
	am := NewAnalyticsManager(lms)
	students := []map[string]any{{"username": "amy", "email": "amy@x.org"}}
	lms.On("EnrolledStudentProfiles", ctx, testCourseID, QueryFeatures).Return(students, nil)

	profiles, err := am.EnrolledStudentProfiles(ctx, testCourseID)
	require.NoError(t, err)
	assert.Equal(t, students, profiles.Students)
	assert.Equal(t, QueryFeatures, profiles.QueriedFeatures)
	assert.Equal(t, AvailableFeatures, profiles.AvailableFeatures)
}

func TestProfileDistributions(t *testing.T) {
	ctx := context.Background()
	lms := new(MockLMSClient)
	am := NewAnalyticsManager(lms)
	gender := &client.ProfileDistribution{Feature: "gender", Type: "EASY_CHOICE", Data: map[string]int{"f": 3, "m": 2}}
	lms.On("ProfileDistribution", ctx, testCourseID, "gender").Return(gender, nil)
	lms.On("ProfileDistribution", ctx, testCourseID, "year_of_birth").Return(nil, errors.New("timeout"))

	dists, err := am.ProfileDistributions(ctx, testCourseID, []string{"gender"})
	require.NoError(t, err)
	assert.Equal(t, gender, dists.Results["gender"])
	assert.Equal(t, "Gender", dists.DisplayNames["gender"])
	assert.Equal(t, AvailableProfileFeatures, dists.AvailableFeatures)

	_, err = am.ProfileDistributions(ctx, testCourseID, []string{"gender", "year_of_birth"})
	assert.EqualError(t, err, "timeout")
}
