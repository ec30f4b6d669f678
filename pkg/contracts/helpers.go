package contracts

import (
	"github.com/pkg/errors"
	"github.com/umbracle/ethgo"
)

// Unnamed outputs are returned by ethgo under their position.
const firstOutput = "0"

func outputValue(data interface{}, method string) (interface{}, error) {
	dataStruct, ok := data.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("mismatched type for %s result", method)
	}
	value, ok := dataStruct[firstOutput]
	if !ok {
		return nil, errors.Errorf("unexpected data structure returned in %s", method)
	}
	return value, nil
}

func decodeAddress(data interface{}, method string) (*ethgo.Address, error) {
	value, err := outputValue(data, method)
	if err != nil {
		return nil, err
	}
	address, ok := value.(ethgo.Address)
	if !ok {
		return nil, errors.Errorf("mismatched type for %s address", method)
	}
	return &address, nil
}

func decodeRole(data interface{}, method string) (Role, error) {
	value, err := outputValue(data, method)
	if err != nil {
		return Role{}, err
	}
	role, ok := value.([32]byte)
	if !ok {
		return Role{}, errors.Errorf("mismatched type for %s role", method)
	}
	return Role(role), nil
}

func decodeBool(data interface{}, method string) (bool, error) {
	value, err := outputValue(data, method)
	if err != nil {
		return false, err
	}
	flag, ok := value.(bool)
	if !ok {
		return false, errors.Errorf("mismatched type for %s flag", method)
	}
	return flag, nil
}
