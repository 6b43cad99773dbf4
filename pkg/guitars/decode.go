package guitars

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/fretmap/fretmap/pkg/errors"
)

// Decoding is strict: unrecognized fields are a failure, not silently
// dropped, so upstream mistakes surface early.

// DecodeSubmission decodes a single JSON guitar submission.
func DecodeSubmission(data []byte) (*GuitarSubmission, error) {
	var sub GuitarSubmission
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		return nil, errors.NewParseError("json", "", err.Error(), err)
	}
	return &sub, nil
}

// DecodeBatch decodes a JSON batch submission. Both a bare array of
// submissions and an object with a "submissions" key are accepted.
func DecodeBatch(data []byte) (*BatchSubmission, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var subs []GuitarSubmission
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&subs); err != nil {
			return nil, errors.NewParseError("json", "", err.Error(), err)
		}
		return &BatchSubmission{Submissions: subs}, nil
	}

	var batch BatchSubmission
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&batch); err != nil {
		return nil, errors.NewParseError("json", "", err.Error(), err)
	}
	return &batch, nil
}

// DecodeSubmissionYAML decodes a single YAML guitar submission.
func DecodeSubmissionYAML(data []byte) (*GuitarSubmission, error) {
	var sub GuitarSubmission
	if err := yaml.UnmarshalWithOptions(data, &sub, yaml.Strict()); err != nil {
		return nil, errors.NewParseError("yaml", "", err.Error(), err)
	}
	return &sub, nil
}

// DecodeBatchYAML decodes a YAML batch submission.
func DecodeBatchYAML(data []byte) (*BatchSubmission, error) {
	var batch BatchSubmission
	if err := yaml.UnmarshalWithOptions(data, &batch, yaml.Strict()); err != nil {
		// A bare sequence of submissions is also accepted.
		var subs []GuitarSubmission
		if seqErr := yaml.UnmarshalWithOptions(data, &subs, yaml.Strict()); seqErr == nil {
			return &BatchSubmission{Submissions: subs}, nil
		}
		return nil, errors.NewParseError("yaml", "", err.Error(), err)
	}
	return &batch, nil
}
