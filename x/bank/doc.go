/*
Package bank implements the funds transfer capability used by contracts.

Balances are kept per address as a normalized set of coins. Coins can only be
moved between existing balances or issued at genesis, so that the total supply
never changes during the execution of a contract.
*/
package bank
