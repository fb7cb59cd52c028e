package responses

// Day is the wire form of a day. Spots is derived from the appointments at
// read time and never persisted.
type Day struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Appointments []int  `json:"appointments"`
	Interviewers []int  `json:"interviewers"`
	Spots        int    `json:"spots"`
}

type Appointment struct {
	ID        int        `json:"id"`
	Time      string     `json:"time"`
	Interview *Interview `json:"interview"`
}

type Interview struct {
	Student     string `json:"student"`
	Interviewer int    `json:"interviewer"`
}

type Interviewer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type AvatarUpload struct {
	InterviewerID int    `json:"interviewer_id"`
	ObjectKey     string `json:"object_key"`
}
