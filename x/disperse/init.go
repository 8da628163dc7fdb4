package disperse

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ spread.Initializer = Initializer{}

// FromGenesis will parse the admin record from genesis and save
// it to the database. This is the creation call: the identity
// named here becomes the first admin.
func (Initializer) FromGenesis(opts spread.Options, kv spread.KVStore) error {
	return gconf.InitConfig(kv, opts, pkgName, &Configuration{})
}
