package types

type Dog struct {
	Name  string `json:"name"`
	Breed string `json:"breed,omitempty"`
	Age   int    `json:"age,omitempty"`
}

type LoadStatus int

const (
	StatusSuccess LoadStatus = iota
	StatusAccessError
	StatusFormatError
)

func (ls LoadStatus) String() string {
	switch ls {
	case StatusSuccess:
		return "SUCCESS"
	case StatusAccessError:
		return "ACCESS ERROR"
	case StatusFormatError:
		return "FORMAT ERROR"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps a terminal load status to the process exit code.
func (ls LoadStatus) ExitCode() int {
	switch ls {
	case StatusAccessError:
		return 1
	case StatusFormatError:
		return 2
	default:
		return 0
	}
}
