package exceptions_test

import (
	"errors"
	"fmt"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/dto/requests"
	"interview-scheduler/internal/pkg/exceptions"
	"interview-scheduler/internal/pkg/utils"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFirstValidationError(t *testing.T) {
	tests := []struct {
		name    string
		request *requests.BookInterview
		want    string
	}{
		{
			name:    "Missing interview",
			request: &requests.BookInterview{},
			want:    "interview is required",
		},
		{
			name:    "Blank student",
			request: &requests.BookInterview{Interview: &requests.Interview{Student: "   ", Interviewer: 1}},
			want:    "interview.student must not be blank",
		},
		{
			name:    "Student too long",
			request: &requests.BookInterview{Interview: &requests.Interview{Student: strings.Repeat("a", constvars.MaxStudentNameLength+1), Interviewer: 1}},
			want:    fmt.Sprintf("interview.student must be at most %d characters long", constvars.MaxStudentNameLength),
		},
		{
			name:    "Missing interviewer",
			request: &requests.BookInterview{Interview: &requests.Interview{Student: "Archie Cohen"}},
			want:    "interview.interviewer is required",
		},
		{
			name:    "Negative interviewer",
			request: &requests.BookInterview{Interview: &requests.Interview{Student: "Archie Cohen", Interviewer: -2}},
			want:    "interview.interviewer must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateStruct(tt.request)
			assert.Equal(t, tt.want, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateStruct_StudentAtLimit(t *testing.T) {
	request := &requests.BookInterview{Interview: &requests.Interview{Student: strings.Repeat("a", constvars.MaxStudentNameLength), Interviewer: 1}}
	assert.NoError(t, utils.ValidateStruct(request))
}

func TestFormatFirstValidationError_NotAValidationError(t *testing.T) {
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, exceptions.FormatFirstValidationError(errors.New("boom")))
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, exceptions.FormatFirstValidationError(nil))
}
