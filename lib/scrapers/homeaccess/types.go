package homeaccess

// StudentInfo is the profile block of the registration page. All
// fields are kept as the portal renders them. TotalCredits is not
// shown anywhere in the portal markup; it stays the literal "0" the
// downstream JSON contract has always carried.
type StudentInfo struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Birthdate    string `json:"birthdate"`
	Campus       string `json:"campus"`
	Grade        string `json:"grade"`
	Counselor    string `json:"counselor"`
	TotalCredits string `json:"totalCredits"`
}

// Assignment is one row of a course's assignment table. Score may be
// a non-numeric placeholder ("X", "MSG", ...), so it stays a string.
type Assignment struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	DateAssigned string `json:"dateAssigned"`
	DateDue      string `json:"dateDue"`
	Score        string `json:"score"`
	TotalPoints  string `json:"totalPoints"`
}

// Course is one class block of the assignments page. Name is raw and
// still carries the course/section number prefix. An empty Grade
// means the course has no grade yet, not a zero.
type Course struct {
	Name        string       `json:"name"`
	Grade       string       `json:"grade"`
	LastUpdated string       `json:"lastUpdated"`
	Assignments []Assignment `json:"assignments"`
}

// ScheduleEntry is one row of the schedule table on the classes page.
type ScheduleEntry struct {
	Building       string `json:"building"`
	CourseCode     string `json:"courseCode"`
	CourseName     string `json:"courseName"`
	Days           string `json:"days"`
	MarkingPeriods string `json:"markingPeriods"`
	Periods        string `json:"periods"`
	Room           string `json:"room"`
	Status         string `json:"status"`
	Teacher        string `json:"teacher"`
}
