package document

// Student and Teacher are roster entries as they appear in the
// rendered document. IDs are assigned by the owning memo and are
// unique and monotonically increasing within each roster.

type Student struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Grade     string `json:"grade"`
	Room      string `json:"room"`
}

type Teacher struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Department string `json:"department"`
}

type Activity struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Issuer struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Document is the full snapshot handed to the composer and to the
// rendering service: the state of one memo at a point in time.
type Document struct {
	Department string    `json:"department"`
	Date       string    `json:"date"`
	Subject    string    `json:"subject"`
	Activity   Activity  `json:"activity"`
	Students   []Student `json:"students"`
	Teachers   []Teacher `json:"teachers"`
	Issuer     Issuer    `json:"issuer"`
}
