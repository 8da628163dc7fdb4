package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/spread"
	"github.com/iov-one/spread/coin"
	"github.com/iov-one/spread/errors"
	"github.com/iov-one/spread/gconf"
	"github.com/iov-one/spread/spreadtest"
	"github.com/iov-one/spread/store"
	"github.com/iov-one/spread/x/cash"
	"github.com/iov-one/spread/x/disperse"
)

type fixture struct {
	db      spread.CacheableKVStore
	exec    *Executor
	ctrl    cash.Controller
	ctxAuth *spreadtest.CtxAuth
	custody spread.Address
}

func newFixture(t *testing.T, admin spread.Address) *fixture {
	t.Helper()

	db := store.MemStore()
	ctxAuth := &spreadtest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	custody := disperse.ContractAccount()

	r := NewRouter()
	disperse.RegisterRoutes(r, ctxAuth)

	if admin != nil {
		err := gconf.Save(db, "disperse", &disperse.Configuration{Admin: admin})
		require.NoError(t, err)
	}

	return &fixture{
		db:      db,
		exec:    NewExecutor(r, ctxAuth, ctrl, custody),
		ctrl:    ctrl,
		ctxAuth: ctxAuth,
		custody: custody,
	}
}

func (f *fixture) signedCtx(signer spread.Condition) spread.Context {
	return f.ctxAuth.SetConditions(context.Background(), signer)
}

func (f *fixture) balance(t *testing.T, addr spread.Address) coin.Coins {
	t.Helper()
	w, err := cash.NewBucket().Get(f.db, addr)
	require.NoError(t, err)
	if w == nil {
		return nil
	}
	return w.Coins()
}

func TestExecutorDisperse(t *testing.T) {
	caller := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()
	bob := spreadtest.NewAddress()

	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.IssueCoins(f.db, caller.Address(), coin.NewCoin(100, "ATM")))

	tx := &spreadtest.Tx{
		Msg: &disperse.DisperseMsg{
			Accounts: []spread.Address{alice, bob},
			Amounts:  []int64{40, 30},
		},
		Funds: coin.Coins{coin.NewCoinp(100, "ATM")},
	}
	ctx := f.signedCtx(caller)

	_, err := f.exec.Check(ctx, f.db, tx)
	require.NoError(t, err)

	res, err := f.exec.Deliver(ctx, f.db, tx)
	require.NoError(t, err)
	require.Len(t, res.Payments, 3)
	assert.Equal(t, spread.ActionTags("disperse"), res.Tags)

	// every unit of the attached payment is accounted for
	assert.True(t, f.balance(t, alice).Contains(coin.NewCoin(40, "ATM")))
	assert.True(t, f.balance(t, bob).Contains(coin.NewCoin(30, "ATM")))
	assert.True(t, f.balance(t, caller.Address()).Contains(coin.NewCoin(30, "ATM")))
	assert.True(t, f.balance(t, f.custody).IsEmpty())
}

func TestExecutorDisperseRollback(t *testing.T) {
	caller := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()
	bob := spreadtest.NewAddress()

	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.IssueCoins(f.db, caller.Address(), coin.NewCoin(50, "ATM")))

	tx := &spreadtest.Tx{
		Msg: &disperse.DisperseMsg{
			Accounts: []spread.Address{alice, bob},
			Amounts:  []int64{40, 20},
		},
		Funds: coin.Coins{coin.NewCoinp(50, "ATM")},
	}
	ctx := f.signedCtx(caller)

	_, err := f.exec.Deliver(ctx, f.db, tx)
	assert.True(t, errors.ErrFunds.Is(err))

	// the whole call is rolled back, including the funds collection
	assert.True(t, f.balance(t, caller.Address()).Contains(coin.NewCoin(50, "ATM")))
	assert.Nil(t, f.balance(t, alice))
	assert.Nil(t, f.balance(t, f.custody))
}

func TestExecutorDisperseWithoutCoverage(t *testing.T) {
	caller := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, nil)
	// the caller claims to attach more than the wallet holds
	require.NoError(t, f.ctrl.IssueCoins(f.db, caller.Address(), coin.NewCoin(10, "ATM")))

	tx := &spreadtest.Tx{
		Msg: &disperse.DisperseMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []int64{40},
		},
		Funds: coin.Coins{coin.NewCoinp(100, "ATM")},
	}

	_, err := f.exec.Deliver(f.signedCtx(caller), f.db, tx)
	assert.True(t, errors.ErrFunds.Is(err))
	assert.True(t, f.balance(t, caller.Address()).Contains(coin.NewCoin(10, "ATM")))
	assert.Nil(t, f.balance(t, alice))
}

func TestExecutorWithdraw(t *testing.T) {
	admin := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, admin.Address())
	require.NoError(t, f.ctrl.IssueCoins(f.db, f.custody, coin.NewCoin(20, "IOV")))

	tx := &spreadtest.Tx{
		Msg: &disperse.WithdrawFundsMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []*coin.Coin{coin.NewCoinp(7, "IOV")},
		},
	}

	res, err := f.exec.Deliver(f.signedCtx(admin), f.db, tx)
	require.NoError(t, err)
	assert.Equal(t, spread.ActionTags("withdraw_funds"), res.Tags)

	assert.True(t, f.balance(t, alice).Contains(coin.NewCoin(7, "IOV")))
	assert.True(t, f.balance(t, f.custody).Contains(coin.NewCoin(13, "IOV")))
}

func TestExecutorWithdrawRollback(t *testing.T) {
	admin := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, admin.Address())
	require.NoError(t, f.ctrl.IssueCoins(f.db, f.custody, coin.NewCoin(5, "IOV")))

	tx := &spreadtest.Tx{
		Msg: &disperse.WithdrawFundsMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []*coin.Coin{coin.NewCoinp(7, "IOV")},
		},
	}

	// the custody cannot cover, the whole call has no effect
	_, err := f.exec.Deliver(f.signedCtx(admin), f.db, tx)
	assert.True(t, errors.ErrFunds.Is(err))
	assert.Nil(t, f.balance(t, alice))
	assert.True(t, f.balance(t, f.custody).Contains(coin.NewCoin(5, "IOV")))
}

func TestExecutorWithdrawUnauthorized(t *testing.T) {
	admin := spreadtest.NewCondition()
	intruder := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, admin.Address())
	require.NoError(t, f.ctrl.IssueCoins(f.db, f.custody, coin.NewCoin(20, "IOV")))

	tx := &spreadtest.Tx{
		Msg: &disperse.WithdrawFundsMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []*coin.Coin{coin.NewCoinp(7, "IOV")},
		},
	}

	_, err := f.exec.Deliver(f.signedCtx(intruder), f.db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Nil(t, f.balance(t, alice))
	assert.True(t, f.balance(t, f.custody).Contains(coin.NewCoin(20, "IOV")))
}

func TestExecutorUpdateAdmin(t *testing.T) {
	first := spreadtest.NewCondition()
	second := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, first.Address())
	require.NoError(t, f.ctrl.IssueCoins(f.db, f.custody, coin.NewCoin(20, "IOV")))

	update := &spreadtest.Tx{
		Msg: &disperse.UpdateAdminMsg{NewAdmin: second.Address()},
	}
	res, err := f.exec.Deliver(f.signedCtx(first), f.db, update)
	require.NoError(t, err)
	assert.Empty(t, res.Payments)

	withdraw := &spreadtest.Tx{
		Msg: &disperse.WithdrawFundsMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []*coin.Coin{coin.NewCoinp(7, "IOV")},
		},
	}

	// the old admin lost the privilege, the new one holds it
	_, err = f.exec.Deliver(f.signedCtx(first), f.db, withdraw)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = f.exec.Deliver(f.signedCtx(second), f.db, withdraw)
	require.NoError(t, err)
	assert.True(t, f.balance(t, alice).Contains(coin.NewCoin(7, "IOV")))
}

func TestExecutorUnknownPath(t *testing.T) {
	f := newFixture(t, nil)
	tx := &spreadtest.Tx{Msg: &spreadtest.Msg{RoutePath: "test/unknown"}}
	_, err := f.exec.Deliver(context.Background(), f.db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestExecutorMalformedFunds(t *testing.T) {
	caller := spreadtest.NewCondition()
	alice := spreadtest.NewAddress()

	f := newFixture(t, nil)
	require.NoError(t, f.ctrl.IssueCoins(f.db, caller.Address(), coin.NewCoin(50, "ATM")))

	tx := &spreadtest.Tx{
		Msg: &disperse.DisperseMsg{
			Accounts: []spread.Address{alice},
			Amounts:  []int64{40},
		},
		Funds: coin.Coins{nil},
	}
	_, err := f.exec.Deliver(f.signedCtx(caller), f.db, tx)
	assert.True(t, errors.ErrInput.Is(err))

	// nothing moved
	assert.True(t, f.balance(t, caller.Address()).Contains(coin.NewCoin(50, "ATM")))
	assert.True(t, f.balance(t, f.custody).IsEmpty())
}

func TestExecutorHandlerPanic(t *testing.T) {
	f := newFixture(t, nil)

	r := NewRouter()
	r.Handle(&spreadtest.Msg{RoutePath: "test/panic"}, brokenHandler{})
	exec := NewExecutor(r, f.ctxAuth, f.ctrl, f.custody)

	tx := &spreadtest.Tx{Msg: &spreadtest.Msg{RoutePath: "test/panic"}}
	_, err := exec.Deliver(context.Background(), f.db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
}

type brokenHandler struct{}

var _ spread.Handler = brokenHandler{}

func (brokenHandler) Check(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.CheckResult, error) {
	panic("broken handler")
}

func (brokenHandler) Deliver(ctx spread.Context, db spread.KVStore, tx spread.Tx) (*spread.DeliverResult, error) {
	panic("broken handler")
}
