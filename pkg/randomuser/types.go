package randomuser

// Response is the top-level document. Results is a pointer so an absent
// field can be told apart from an empty batch.
type Response struct {
	Results *[]Result `json:"results"`
	Error   string    `json:"error,omitempty"`
}

// Result is one profile, reduced to the fields the directory uses.
type Result struct {
	Login    *Login    `json:"login"`
	Name     *Name     `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Picture  *Picture  `json:"picture"`
	Location *Location `json:"location"`
	Dob      *Dob      `json:"dob"`
	Nat      string    `json:"nat"`
}

type Login struct {
	UUID string `json:"uuid"`
}

type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type Picture struct {
	Large string `json:"large"`
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type Dob struct {
	Age int `json:"age"`
}
