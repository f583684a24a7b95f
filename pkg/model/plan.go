package model

type PlanCSVRow struct {
	CourseCode string  `csv:"course_code"`
	CourseName string  `csv:"course_name"`
	CRN        string  `csv:"crn"`
	Days       string  `csv:"days"`
	BeginTime  string  `csv:"begin_time"`
	EndTime    string  `csv:"end_time"`
	Units      int     `csv:"units"`
	Score      float64 `csv:"score"`
	Instructor string  `csv:"instructor"`
}
