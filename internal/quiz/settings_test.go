package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{
			name: "valid",
			settings: Settings{
				Subject:         "Admin Officer",
				DurationMinutes: 60,
				QuestionCount:   50,
			},
		},
		{
			name: "missing subject",
			settings: Settings{
				DurationMinutes: 60,
				QuestionCount:   50,
			},
			wantErr: "subject",
		},
		{
			name: "non-positive duration",
			settings: Settings{
				Subject:       "Admin Officer",
				QuestionCount: 50,
			},
			wantErr: "duration_minutes",
		},
		{
			name: "non-positive question count",
			settings: Settings{
				Subject:         "Admin Officer",
				DurationMinutes: 60,
			},
			wantErr: "question_count",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
