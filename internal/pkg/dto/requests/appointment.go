package requests

type BookInterview struct {
	Interview *Interview `json:"interview" validate:"required"`
}

type Interview struct {
	// max must equal constvars.MaxStudentNameLength.
	Student     string `json:"student" validate:"required,not_blank,max=120"`
	Interviewer int    `json:"interviewer" validate:"required,gt=0"`
}
