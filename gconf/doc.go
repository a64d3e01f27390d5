/*
Package gconf implements a configuration store intended to be used as a
per-package singleton kept in the database.

A package saves its configuration once, usually when the contract is
instantiated, and loads it whenever it is needed. The configuration is always
validated before it is written.
*/
package gconf
