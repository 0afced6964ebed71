package roster

// Worker is a single roster entry. Number and Year are optional on disk:
// a nil Number renders as an empty cell and a nil Year counts as hired in
// the current year.
type Worker struct {
	Surname string  `json:"surname" yaml:"surname"`
	Name    string  `json:"name" yaml:"name"`
	Number  *string `json:"number" yaml:"number"`
	Year    *int    `json:"year" yaml:"year"`
}

// Roster is the ordered list of workers held in one data file.
type Roster []Worker

// NewWorker builds a worker for the add command. An empty number is stored
// as absent.
func NewWorker(surname, name, number string, year int) Worker {
	w := Worker{Surname: surname, Name: name, Year: &year}
	if number != "" {
		w.Number = &number
	}
	return w
}

// PhoneNumber returns the phone number or "" when absent.
func (w Worker) PhoneNumber() string {
	if w.Number == nil {
		return ""
	}
	return *w.Number
}

// Tenure returns the whole years since hiring.
func (w Worker) Tenure(currentYear int) int {
	if w.Year == nil {
		return 0
	}
	return currentYear - *w.Year
}

// Add appends w and returns the extended roster. Duplicates are allowed.
func Add(r Roster, w Worker) Roster {
	out := make(Roster, len(r), len(r)+1)
	copy(out, r)
	return append(out, w)
}

// SelectByTenure returns, in roster order, the workers whose tenure is at
// least period years. The input is not modified.
func SelectByTenure(r Roster, period, currentYear int) Roster {
	out := Roster{}
	for _, w := range r {
		if w.Tenure(currentYear) >= period {
			out = append(out, w)
		}
	}
	return out
}
