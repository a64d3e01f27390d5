/*
Package identity provides the capability that turns untrusted account
strings into validated addresses.

Two validators are provided. Mock accepts simple lowercase names and is meant
for tests and local runs. Bech32 accepts bech32 encoded addresses with a
configured human readable part, the way chain accounts are usually written.
*/
package identity
