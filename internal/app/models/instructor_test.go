package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInstructor(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   Instructor
	}{
		{
			name: "full document",
			fields: map[string]any{
				"name":            "김수진",
				"currentCenter":   "문화체육센터",
				"category":        "수영",
				"position":        "수석 강사",
				"imageUrl":        "https://example.com/p.jpg",
				"gender":          "female",
				"assignedClasses": []any{"새벽 수영", "주말 자유 수영"},
				"licenses":        []any{"생활체육지도사 2급"},
				"career":          []any{"시립 수영단 코치"},
			},
			want: Instructor{
				ID:              "inst1",
				Name:            "김수진",
				CurrentCenter:   "문화체육센터",
				Category:        "수영",
				Position:        "수석 강사",
				ImageURL:        ptr("https://example.com/p.jpg"),
				Gender:          genderPtr(GenderFemale),
				AssignedClasses: []string{"새벽 수영", "주말 자유 수영"},
				Licenses:        []string{"생활체육지도사 2급"},
				Career:          []string{"시립 수영단 코치"},
			},
		},
		{
			name:   "nil field bag",
			fields: nil,
			want: Instructor{
				ID:              "inst1",
				AssignedClasses: []string{},
				Licenses:        []string{},
				Career:          []string{},
			},
		},
		{
			name: "mistyped scalars fall back to empty strings",
			fields: map[string]any{
				"name":          42,
				"currentCenter": true,
				"category":      []any{"수영"},
				"position":      map[string]any{"x": 1},
			},
			want: Instructor{
				ID:              "inst1",
				AssignedClasses: []string{},
				Licenses:        []string{},
				Career:          []string{},
			},
		},
		{
			name: "unrecognized gender literal dropped",
			fields: map[string]any{
				"name":   "박지훈",
				"gender": "other",
			},
			want: Instructor{
				ID:              "inst1",
				Name:            "박지훈",
				AssignedClasses: []string{},
				Licenses:        []string{},
				Career:          []string{},
			},
		},
		{
			name: "non-sequence list field collapses to empty",
			fields: map[string]any{
				"assignedClasses": "새벽 수영",
				"licenses":        map[string]any{"0": "자격증"},
				"career":          7,
			},
			want: Instructor{
				ID:              "inst1",
				AssignedClasses: []string{},
				Licenses:        []string{},
				Career:          []string{},
			},
		},
		{
			name: "non-string elements skipped within a sequence",
			fields: map[string]any{
				"career": []any{"수영장 운영", 3, nil, "코치"},
			},
			want: Instructor{
				ID:              "inst1",
				AssignedClasses: []string{},
				Licenses:        []string{},
				Career:          []string{"수영장 운영", "코치"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceInstructor("inst1", tt.fields)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceInstructorNeverNilSlices(t *testing.T) {
	got := CoerceInstructor("inst2", map[string]any{"name": "이강사"})
	assert.NotNil(t, got.AssignedClasses)
	assert.NotNil(t, got.Licenses)
	assert.NotNil(t, got.Career)
}

func TestDocumentWritesExplicitNulls(t *testing.T) {
	inst := Instructor{
		ID:            "inst3",
		Name:          "최윤아",
		CurrentCenter: "용산청소년센터",
		Category:      "헬스",
		Position:      "강사",
	}

	doc := inst.Document()

	// Absent optionals must appear as nulls so an overwrite clears them
	img, ok := doc["imageUrl"]
	assert.True(t, ok)
	assert.Nil(t, img)
	gender, ok := doc["gender"]
	assert.True(t, ok)
	assert.Nil(t, gender)

	assert.Equal(t, []string{}, doc["assignedClasses"])
	assert.Equal(t, []string{}, doc["licenses"])
	assert.Equal(t, []string{}, doc["career"])
}

func TestDocumentRoundTrip(t *testing.T) {
	inst := Instructor{
		ID:              "inst4",
		Name:            "정민호",
		CurrentCenter:   "한강로피트니스센터",
		Category:        "헬스",
		Position:        "트레이너",
		ImageURL:        ptr("https://example.com/m.jpg"),
		Gender:          genderPtr(GenderMale),
		AssignedClasses: []string{"PT 상담"},
		Licenses:        []string{},
		Career:          []string{"피트니스 대회 입상"},
	}

	doc := inst.Document()
	assert.Equal(t, "정민호", doc["name"])
	assert.Equal(t, "https://example.com/m.jpg", doc["imageUrl"])
	assert.Equal(t, "male", doc["gender"])
	assert.Equal(t, []string{"PT 상담"}, doc["assignedClasses"])
}

func ptr(s string) *string { return &s }

func genderPtr(g Gender) *Gender { return &g }
