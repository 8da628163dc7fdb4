package spread

import (
	"github.com/iov-one/spread/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DeliverOrError returns an abci response for DeliverTx, converting the
// error message if present, or using the successful DeliverResult.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: log}
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx, converting the
// error message if present, or using the successful CheckResult.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseCheckTx{Code: code, Log: log}
	}
	return result.ToABCI()
}
