package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
)

// Genesis file format, designed to be overlayed with tendermint genesis
type Genesis struct {
	ChainID    string         `json:"chain_id"`
	AppOptions spread.Options `json:"app_options"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrap(err, "loading genesis file")
	}

	err = json.Unmarshal(bytes, &gen)
	if err != nil {
		return gen, errors.Wrap(err, "unmarshaling genesis file")
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...spread.Initializer) spread.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []spread.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts spread.Options, kv spread.KVStore) error {
	for _, i := range c.inits {
		err := i.FromGenesis(opts, kv)
		if err != nil {
			return err
		}
	}
	return nil
}

//------- storing chainID ---------

const chainIDKey = "internal/chainID"

// InitChain performs the one-time chain setup: it records the chain
// id and runs all genesis initializers against the store.
func InitChain(kv spread.KVStore, init spread.Initializer, gen Genesis) error {
	if err := saveChainID(kv, gen.ChainID); err != nil {
		return err
	}
	return init.FromGenesis(gen.AppOptions, kv)
}

// ChainID returns the chain id stored if any
func ChainID(kv spread.KVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store.
// Returns error if already set, or invalid name
func saveChainID(kv spread.KVStore, chainID string) error {
	if !spread.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %s", chainID)
	}
	k := []byte(chainIDKey)
	ok, err := kv.Has(k)
	if err != nil {
		return err
	}
	if ok {
		return errors.Wrap(errors.ErrState, "chain id already set")
	}
	return kv.Set(k, []byte(chainID))
}
