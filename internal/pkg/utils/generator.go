package utils

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateAvatarObjectKey names an avatar object after its interviewer so a
// re-upload never collides with the previous object.
func GenerateAvatarObjectKey(interviewerID int, fileName string) string {
	extension := strings.ToLower(path.Ext(fileName))
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	return fmt.Sprintf("interviewers/%d/avatar_%s%s", interviewerID, timestamp, extension)
}
