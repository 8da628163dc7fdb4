package disperse

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/spreadtest/assert"
	"github.com/iov-one/spread/store"
)

func TestGenesisInitializer(t *testing.T) {
	admin := make(spread.Address, spread.AddressLength)
	for i := range admin {
		admin[i] = byte(i)
	}

	genesis := fmt.Sprintf(`{"conf": {"disperse": {"admin": %q}}}`, hex.EncodeToString(admin))
	var opts spread.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, admin, conf.Admin)
}

func TestGenesisInitializerMissingConfiguration(t *testing.T) {
	var opts spread.Options
	if err := json.Unmarshal([]byte(`{"conf": {}}`), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var ini Initializer
	err := ini.FromGenesis(opts, db)
	assert.IsErr(t, errors.ErrNotFound, err)
}
