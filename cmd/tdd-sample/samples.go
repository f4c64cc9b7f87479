// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/slukits/tdd"
)

var _ = tdd.OnModuleInitialize(func(t *tdd.T) {
	t.Log("sample module initialized")
})

// Account is a sample subject under test.
type Account struct {
	balance int
	history []int
}

var errOverdraw = errors.New("account: overdraw")

// InsufficientFunds is returned by Withdraw if an account's balance is
// less than the withdrawn amount.
type InsufficientFunds struct{ Missing int }

func (e InsufficientFunds) Error() string {
	return fmt.Sprintf("%v: missing %d", errOverdraw, e.Missing)
}

func (e InsufficientFunds) Unwrap() error { return errOverdraw }

func (a *Account) Deposit(amount int) {
	if amount <= 0 {
		panic(fmt.Sprintf("account: deposit: invalid amount %d", amount))
	}
	a.balance += amount
	a.history = append(a.history, amount)
}

func (a *Account) Withdraw(amount int) error {
	if amount > a.balance {
		return InsufficientFunds{Missing: amount - a.balance}
	}
	a.balance -= amount
	a.history = append(a.history, -amount)
	return nil
}

var bank tdd.Fixtures

// AccountTests exercises Account with lifecycle hooks.
type AccountTests struct{ account *Account }

var _ = tdd.Register[AccountTests]()

func (s *AccountTests) Init(t *tdd.T) { bank.Set(t, 100) }

func (s *AccountTests) SetUp(t *tdd.T) {
	s.account = &Account{}
	s.account.Deposit(bank.Get(t).(int))
}

func (s *AccountTests) Starts_with_the_initial_deposit(t *tdd.T) {
	tdd.AreEqual(t, 100, s.account.balance)
}

func (s *AccountTests) Withdraws_from_its_balance(t *tdd.T) {
	t.FatalOn(s.account.Withdraw(30))
	tdd.That(t, s.account.balance).Is.EqualTo(70)
	tdd.AreEqual(t, 2, len(s.account.history))
}

func (s *AccountTests) Refuses_to_be_overdrawn(t *tdd.T) {
	tdd.ExpectError[InsufficientFunds](t, func() error {
		return s.account.Withdraw(130)
	})
	t.ErrIs(s.account.Withdraw(101), errOverdraw)
	tdd.AreEqual(t, 100, s.account.balance, "balance unchanged")
}

func (s *AccountTests) Refuses_invalid_deposits(t *tdd.T) {
	tdd.ExpectPanic[string](t, func() { s.account.Deposit(-1) })
	t.Contains(fmt.Sprint(s.account.history), "100")
}

func (s *AccountTests) TearDown(t *tdd.T) { s.account = nil }

func (s *AccountTests) Finalize(t *tdd.T) { bank.Del(t) }

// Failing shows how failed checks are reported.
type Failing struct{}

var _ = tdd.Register[Failing]()

func (f *Failing) Compares_scalars(t *tdd.T) {
	tdd.AreEqual(t, 1, 2, "nope, not equal")
}

func (f *Failing) Compares_fluently(t *tdd.T) {
	tdd.That(t, 1).Is.EqualTo(2)
}

func (f *Failing) Compares_approximately(t *tdd.T) {
	tdd.IsWithin(t, 3.14, 22.0/7.0, 0.001)
}

func (f *Failing) Panics(t *tdd.T) {
	var a *Account
	a.Deposit(1)
}
