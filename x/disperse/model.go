package disperse

import (
	"github.com/iov-one/spread"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/gconf"
)

// pkgName is the gconf namespace of the admin record.
const pkgName = "disperse"

// Validate implements the gconf requirements on the singleton.
func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

var _ gconf.Configuration = (*Configuration)(nil)

// ContractAccount returns the address holding the custody funds.
// Funds attached to incoming calls are collected here by the host
// and withdrawals are paid out of it.
func ContractAccount() spread.Address {
	return spread.NewCondition("spread", "contract", []byte(pkgName)).Address()
}

// loadConf returns the admin record. The record is written at
// genesis so a missing one means a broken setup.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// saveConf overwrites the admin record.
func saveConf(db gconf.Store, conf *Configuration) error {
	return gconf.Save(db, pkgName, conf)
}
