package auth

// Employee is the identity the backend resolves from a PIN.
type Employee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EmpCode string `json:"emp_code"`
}

// RegisteredUser is a device-local identity cached after a successful
// biometric link. The PIN is stored only as a bcrypt hash; local login
// scans this list and compares.
type RegisteredUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EmpCode string `json:"emp_code"`
	PINHash string `json:"-"`
}
