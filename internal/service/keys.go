package service

import (
	"fmt"
	"regexp"
	"strings"
)

var inputSeparators = regexp.MustCompile(`[\n\r\s,]+`)

// SplitInputList splits free text from a form textarea into identifiers.
// Commas and any whitespace separate tokens; empty tokens are dropped and
// order and duplicates are kept.
//
//	"a@b.com, c@d.com\ne@f.com" -> ["a@b.com", "c@d.com", "e@f.com"]
func SplitInputList(input string) []string {
	out := make([]string, 0)
	for _, token := range inputSeparators.Split(input, -1) {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// CourseKey is a parsed org/course/run course identifier.
type CourseKey struct {
	Org    string
	Course string
	Run    string
}

func (k CourseKey) String() string {
	return k.Org + "/" + k.Course + "/" + k.Run
}

// ParseCourseID splits a course identifier into its three components.
func ParseCourseID(courseID string) (CourseKey, error) {
	parts := strings.Split(courseID, "/")
	if len(parts) != 3 {
		return CourseKey{}, fmt.Errorf("%w: '%s'", ErrInvalidCourseID, courseID)
	}
	for _, part := range parts {
		if part == "" {
			return CourseKey{}, fmt.Errorf("%w: '%s'", ErrInvalidCourseID, courseID)
		}
	}
	return CourseKey{Org: parts[0], Course: parts[1], Run: parts[2]}, nil
}

// ModuleStateKey converts a problem urlname as typed by an instructor into the
// key its student state is stored under. A trailing ".xml" is dropped and the
// course run is not part of the key.
func ModuleStateKey(courseID, urlname string) (string, error) {
	key, err := ParseCourseID(courseID)
	if err != nil {
		return "", err
	}
	urlname = strings.TrimSuffix(urlname, ".xml")
	return fmt.Sprintf("i4x://%s/%s/problem/%s", key.Org, key.Course, urlname), nil
}

// StudentProgressURL is the LMS path of a student's progress page.
func StudentProgressURL(courseID string, userID int) string {
	return fmt.Sprintf("/courses/%s/progress/%d", courseID, userID)
}
