package dogs

import (
	"encoding/json"

	apperrors "gitlab.com/kennelworks/dogdex/internal/errors"
	"gitlab.com/kennelworks/dogdex/internal/types"
	"gitlab.com/kennelworks/dogdex/internal/util"
)

// Service defines operations on dogs files
type Service interface {
	LoadFile(filePath string) ([]types.Dog, error)
	CanonicalJSON(dogs []types.Dog) (string, error)
}

type DefaultService struct{}

func NewDefaultService() *DefaultService {
	return &DefaultService{}
}

// LoadFile reads a dogs file and decodes it into a list of dogs.
// Exactly one of the following is produced: the decoded list, a
// *apperrors.FileReadError (file could not be opened/read) or a
// *apperrors.ParseError (content is not valid JSON of the expected shape).
func (s *DefaultService) LoadFile(filePath string) ([]types.Dog, error) {
	return util.ParseFile[[]types.Dog](filePath)
}

// CanonicalJSON re-encodes a decoded dogs list into its canonical
// indented JSON form, for round-trip checks against the source file.
func (s *DefaultService) CanonicalJSON(dogs []types.Dog) (string, error) {
	data, err := json.MarshalIndent(dogs, "", "  ")
	if err != nil {
		return "", &apperrors.ParseError{Source: "decoded dogs", Err: err}
	}
	return string(data) + "\n", nil
}
