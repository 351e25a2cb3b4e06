package usererrors

import (
	"fmt"
	"simassert/src/assert"
	"strings"
)

// Kind classifies a violated caller contract. The set is closed; every Kind maps to exactly one
// canonical message template.
type Kind int

const (
	KindAllNotAllowed Kind = iota
	KindCanOnlyBeCalledInMode
	KindCanOnlyBeCalledInState
	KindCannotBeCalledInMode
	KindCannotBeCalledInState
	KindCannotBeIdentical
	KindCannotBeNegative
	KindCannotBeNull
	KindCannotBeLarger
	KindCannotBeSmaller
	KindCannotBeOff
	KindCannotBeOn
	KindCannotBePositive
	KindCannotBeSetTo
	KindCannotBeUnknown
	KindCannotBeZero
	KindExceedCompConnectionLimit
	KindFileCannotCreate
	KindFileCannotOpen
	KindIsDeprecated
	KindMustBeCalled
	KindMustBeIdentical
	KindMustBeInRange
	KindMustBeLoggerCustom
	KindMustBeNegative
	KindMustBeOff
	KindMustBeOn
	KindMustBePositive
	KindMustBeSetTo
	KindMustBeLarger
	KindMustBeSmaller
	KindMustBeZero
	KindMustHaveSameSign
	KindNetworkAlreadyRun
	KindRepeatedCompConnection
	KindSynapseCompConnection
	KindUnknownGroupId
	KindUnknown
	KindWrongNeuronType

	kindCount
)

type kindEntry struct {
	name     string
	template string
}

// The array length pins the table to the enum; the init check below rejects holes.
var kindTable = [kindCount]kindEntry{
	KindAllNotAllowed:             {"ALL_NOT_ALLOWED", "cannot be ALL"},
	KindCanOnlyBeCalledInMode:     {"CAN_ONLY_BE_CALLED_IN_MODE", "can only be called in mode"},
	KindCanOnlyBeCalledInState:    {"CAN_ONLY_BE_CALLED_IN_STATE", "can only be called in state"},
	KindCannotBeCalledInMode:      {"CANNOT_BE_CALLED_IN_MODE", "cannot be called in mode"},
	KindCannotBeCalledInState:     {"CANNOT_BE_CALLED_IN_STATE", "cannot be called in state"},
	KindCannotBeIdentical:         {"CANNOT_BE_IDENTICAL", "cannot be identical to"},
	KindCannotBeNegative:          {"CANNOT_BE_NEGATIVE", "cannot be negative"},
	KindCannotBeNull:              {"CANNOT_BE_NULL", "cannot be NULL"},
	KindCannotBeLarger:            {"CANNOT_BE_LARGER", "cannot be larger than"},
	KindCannotBeSmaller:           {"CANNOT_BE_SMALLER", "cannot be smaller than"},
	KindCannotBeOff:               {"CANNOT_BE_OFF", "cannot be off"},
	KindCannotBeOn:                {"CANNOT_BE_ON", "cannot be on"},
	KindCannotBePositive:          {"CANNOT_BE_POSITIVE", "cannot be positive"},
	KindCannotBeSetTo:             {"CANNOT_BE_SET_TO", "cannot be set to"},
	KindCannotBeUnknown:           {"CANNOT_BE_UNKNOWN", "cannot be of type UNKNOWN"},
	KindCannotBeZero:              {"CANNOT_BE_ZERO", "cannot be zero"},
	KindExceedCompConnectionLimit: {"EXCEED_COMP_CONNECTION_LIMIT", "exceeds the compartmental connection limit of"},
	KindFileCannotCreate:          {"FILE_CANNOT_CREATE", "could not be created"},
	KindFileCannotOpen:            {"FILE_CANNOT_OPEN", "could not be opened"},
	KindIsDeprecated:              {"IS_DEPRECATED", "is deprecated"},
	KindMustBeCalled:              {"MUST_BE_CALLED", "must be called"},
	KindMustBeIdentical:           {"MUST_BE_IDENTICAL", "must be identical to"},
	KindMustBeInRange:             {"MUST_BE_IN_RANGE", "must be in the range"},
	KindMustBeLoggerCustom:        {"MUST_BE_LOGGER_CUSTOM", "must be set to CUSTOM"},
	KindMustBeNegative:            {"MUST_BE_NEGATIVE", "must be negative"},
	KindMustBeOff:                 {"MUST_BE_OFF", "must be off"},
	KindMustBeOn:                  {"MUST_BE_ON", "must be on"},
	KindMustBePositive:            {"MUST_BE_POSITIVE", "must be positive"},
	KindMustBeSetTo:               {"MUST_BE_SET_TO", "must be set to"},
	KindMustBeLarger:              {"MUST_BE_LARGER", "must be larger than"},
	KindMustBeSmaller:             {"MUST_BE_SMALLER", "must be smaller than"},
	KindMustBeZero:                {"MUST_BE_ZERO", "must be zero"},
	KindMustHaveSameSign:          {"MUST_HAVE_SAME_SIGN", "must have the same sign"},
	KindNetworkAlreadyRun:         {"NETWORK_ALREADY_RUN", "cannot be called after the network has been run"},
	KindRepeatedCompConnection:    {"REPEATED_COMP_CONNECTION", "is identical to or the reverse of an existing compartmental connection"},
	KindSynapseCompConnection:     {"SYNAPSE_COMP_CONNECTION", "cannot have both a synaptic and a compartmental connection"},
	KindUnknownGroupId:            {"UNKNOWN_GROUP_ID", "is not a known group ID"},
	KindUnknown:                   {"UNKNOWN", "caused an unknown error"},
	KindWrongNeuronType:           {"WRONG_NEURON_TYPE", "cannot be applied to this neuron type"},
}

func init() {
	names := map[string]Kind{}
	for i, entry := range kindTable {
		kind := Kind(i)
		assert.Assert(entry.name != "", fmt.Errorf("classification %d has no name", i))
		assert.Assert(strings.TrimSpace(entry.template) == entry.template && entry.template != "", fmt.Errorf("classification %s has an invalid template: %q", entry.name, entry.template))
		_, duplicate := names[entry.name]
		assert.Assert(!duplicate, fmt.Errorf("classification name %s is used twice", entry.name))
		names[entry.name] = kind
	}
}

// Kinds returns the closed set of classifications in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for i := range kindCount {
		kinds = append(kinds, Kind(i))
	}
	return kinds
}

func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Template is the canonical message text of k.
func (k Kind) Template() string {
	assert.Assert(k.Valid(), fmt.Errorf("classification %d is outside of the closed set", int(k)))
	return kindTable[k].template
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTable[k].name
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("classification %d is outside of the closed set", int(k))
	}
	return []byte(kindTable[k].name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind resolves a symbolic name like "CANNOT_BE_NEGATIVE". Matching ignores case and
// accepts '-' in place of '_'.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, entry := range kindTable {
		if entry.name == normalized {
			return Kind(i), nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown classification '%s'", name)
}
