// Package extpg registers text codecs for PostgreSQL's extended types with a database driver.
/*
The codecs themselves live in the pgtype package: dates and times, intervals, geometric types, MAC addresses, UUIDs,
fixed-width integers, and the generic Range and Multirange containers built over them. This package describes each
of those types by name and OID and hands a pair of parsers for it to a driver through the Registrar interface.

Registration is explicit. Nothing is registered at import time:

	var m extpg.Map
	extpg.Register(&m, extpg.DefaultTypes()...)

	v, err := m.ParseText(pgtype.DaterangeOID, &src)

A Config read from YAML selects which types to register and at what level to log:

	cfg, err := extpg.ParseConfig(f)
	m, err := extpg.NewMap(cfg, logger)

Package pgxcodec registers the same types as codecs on a github.com/jackc/pgx/v5 type map.

Logging

Map logs registrations at debug level and parse failures at error level through the Logger interface. Adapters for
common logging libraries are in the log directory.
*/
package extpg
