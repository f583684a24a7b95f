package model

// TimeUnknown marks a meeting time that could not be parsed. A section
// carrying it never blocks another section's time slot.
const TimeUnknown = -1

// Section is one row of the flattened registrar export. The csv tags mirror
// the Banner column names produced by the data pipeline.
type Section struct {
	SubjectCourse     string `csv:"subjectCourse"`
	CourseTitle       string `csv:"courseTitle"`
	Subject           string `csv:"subject"`
	CourseNumber      string `csv:"courseNumber"`
	CRN               string `csv:"courseReferenceNumber"`
	Term              string `csv:"term"`
	CreditHours       string `csv:"creditHours"`
	MaximumEnrollment int    `csv:"maximumEnrollment"`
	SeatsAvailable    int    `csv:"seatsAvailable"`
	FacultyName       string `csv:"facultyDisplayName"`
	MeetingType       string `csv:"meeting_meetingTypeDescription"`
	BeginTimeSTR      string `csv:"meeting_meetingBeginTime"`
	EndTimeSTR        string `csv:"meeting_meetingEndTime"`
	Monday            bool   `csv:"meeting_meetingMonday"`
	Tuesday           bool   `csv:"meeting_meetingTuesday"`
	Wednesday         bool   `csv:"meeting_meetingWednesday"`
	Thursday          bool   `csv:"meeting_meetingThursday"`
	Friday            bool   `csv:"meeting_meetingFriday"`
	DaysSTR           string `csv:"meeting_days"`
	PrerequisitesSTR  string `csv:"prerequisites"`

	// Runtime properties assigned during normalization
	Code   string     `csv:"-"`
	Score  float64    `csv:"-"`
	Units  int        `csv:"-"`
	Days   []int      `csv:"-"`
	Start  int        `csv:"-"`
	End    int        `csv:"-"`
	Prereq [][]string `csv:"-"`
}
