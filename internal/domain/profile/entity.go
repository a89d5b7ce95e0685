package profile

// Profile is the employee record the backend exposes to the mobile app.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EmpCode     string `json:"emp_code"`
	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	JoinDate    string `json:"join_date,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
