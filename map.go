package extpg

import (
	"context"
	"sync"
)

// Map is a Registrar that keeps the registered parsers by OID. The zero value is ready to use and logs nothing.
// A Map is safe for concurrent use.
type Map struct {
	Logger   Logger
	LogLevel LogLevel

	mu     sync.RWMutex
	text   map[uint32]TextParser
	array  map[uint32]TextParser
	names  map[uint32]string
	sqlOID map[string]uint32
}

func (m *Map) init() {
	if m.text == nil {
		m.text = make(map[uint32]TextParser)
		m.array = make(map[uint32]TextParser)
		m.names = make(map[uint32]string)
		m.sqlOID = make(map[string]uint32)
	}
}

func (m *Map) RegisterTextParser(oid uint32, fn TextParser) {
	m.mu.Lock()
	m.init()
	m.text[oid] = fn
	m.mu.Unlock()

	m.log(context.Background(), LogLevelDebug, "RegisterTextParser", map[string]any{"oid": oid})
}

func (m *Map) RegisterArrayParser(oid uint32, fn TextParser) {
	m.mu.Lock()
	m.init()
	m.array[oid] = fn
	m.mu.Unlock()

	m.log(context.Background(), LogLevelDebug, "RegisterArrayParser", map[string]any{"oid": oid})
}

// RegisterType registers the parsers of t under its OID and array OID and records its names.
func (m *Map) RegisterType(t *Type) {
	m.mu.Lock()
	m.init()
	m.text[t.OID] = t.ParseScalar
	m.names[t.OID] = t.Name
	m.sqlOID[t.SQLName] = t.OID
	if t.ArrayOID != 0 {
		m.array[t.ArrayOID] = t.ParseArray
		m.names[t.ArrayOID] = t.Name + "[]"
		m.sqlOID["_"+t.SQLName] = t.ArrayOID
	}
	m.mu.Unlock()

	m.log(context.Background(), LogLevelDebug, "RegisterType", map[string]any{"type": t.Name, "oid": t.OID, "arrayOID": t.ArrayOID})
}

// OIDForName returns the OID registered for the PostgreSQL type name. Array types are named with a leading
// underscore, e.g. _int4range.
func (m *Map) OIDForName(name string) (uint32, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	oid, ok := m.sqlOID[name]
	return oid, ok
}

// TextParser returns the scalar parser registered for oid.
func (m *Map) TextParser(oid uint32) (TextParser, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.text[oid]
	return fn, ok
}

// ArrayParser returns the array parser registered for oid.
func (m *Map) ArrayParser(oid uint32) (TextParser, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.array[oid]
	return fn, ok
}

// ParseText parses src with the scalar parser registered for oid. Text of an unregistered OID is returned as a
// string.
func (m *Map) ParseText(oid uint32, src *string) (any, error) {
	fn, ok := m.TextParser(oid)
	return m.parse(oid, fn, ok, src)
}

// ParseArrayText parses src with the array parser registered for oid. Text of an unregistered OID is returned as a
// string.
func (m *Map) ParseArrayText(oid uint32, src *string) (any, error) {
	fn, ok := m.ArrayParser(oid)
	return m.parse(oid, fn, ok, src)
}

func (m *Map) parse(oid uint32, fn TextParser, ok bool, src *string) (any, error) {
	if src == nil {
		return nil, nil
	}
	if !ok {
		return *src, nil
	}

	v, err := fn(src)
	if err != nil {
		data := map[string]any{"oid": oid, "err": err}
		m.mu.RLock()
		if name, ok := m.names[oid]; ok {
			data["type"] = name
		}
		m.mu.RUnlock()
		m.log(context.Background(), LogLevelError, "ParseText", data)
		return nil, err
	}
	return v, nil
}

func (m *Map) shouldLog(lvl LogLevel) bool {
	return m.Logger != nil && m.LogLevel >= lvl
}

func (m *Map) log(ctx context.Context, lvl LogLevel, msg string, data map[string]any) {
	if !m.shouldLog(lvl) {
		return
	}
	m.Logger.Log(ctx, lvl, msg, data)
}
