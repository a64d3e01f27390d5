/*
Package admins implements an admin list contract with shared donations.

The contract keeps an ordered list of admin addresses. Any admin can add new
members, every member can leave at any time, and anybody can donate funds of
the configured denomination. A donation is split in equal shares between all
current admins. Whatever cannot be split equally stays with the contract.

Messages

  {"add_members": {"admins": ["alice", "bob"]}}
  {"leave": {}}
  {"donate": {}}

Queries

  {"greet": {}}
  {"admin_list": {}}
  {"config": {}}

The registry and the configuration are loaded at the start of every call and
written back only when all checks pass.
*/
package admins
