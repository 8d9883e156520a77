// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl_test

import (
	"errors"

	. "gopkg.in/check.v1"

	"github.com/canonical/sqlitpl"
)

type RecordSuite struct{}

var _ = Suite(&RecordSuite{})

func (s *RecordSuite) TestGetSet(c *C) {
	r := sqlitpl.NewRecord([]string{"id", "name"}, []any{1, "a"})
	v, err := r.Get("name")
	c.Assert(err, IsNil)
	c.Check(v, Equals, "a")

	r.Set("name", "b")
	r.Set("email", "b@example.com")
	c.Check(r.Names(), DeepEquals, []string{"id", "name", "email"})
	c.Check(r.Len(), Equals, 3)
	v, err = r.Get("name")
	c.Assert(err, IsNil)
	c.Check(v, Equals, "b")

	_, err = r.Get("missing")
	c.Check(errors.Is(err, sqlitpl.ErrNoField), Equals, true)
	_, ok := r.Lookup("missing")
	c.Check(ok, Equals, false)
}

func (s *RecordSuite) TestZeroRecord(c *C) {
	var r sqlitpl.Record
	c.Check(r.Len(), Equals, 0)
	_, err := r.Get("id")
	c.Check(err, ErrorMatches, `cannot get field "id": no such field`)
	r.Set("id", 7)
	v, err := r.Get("id")
	c.Assert(err, IsNil)
	c.Check(v, Equals, 7)
}

func (s *RecordSuite) TestCaseSensitive(c *C) {
	r := sqlitpl.NewRecord([]string{"Name"}, []any{"a"})
	_, ok := r.Lookup("name")
	c.Check(ok, Equals, false)
	_, ok = r.Lookup("Name")
	c.Check(ok, Equals, true)
}

func (s *RecordSuite) TestRepeatedName(c *C) {
	r := sqlitpl.NewRecord([]string{"a", "b", "a"}, []any{1, 2, 3})
	c.Check(r.Names(), DeepEquals, []string{"a", "b"})
	v, err := r.Get("a")
	c.Assert(err, IsNil)
	c.Check(v, Equals, 3)
}

func (s *RecordSuite) TestEqualIgnoresOrder(c *C) {
	a := sqlitpl.NewRecord([]string{"id", "tags"}, []any{1, []byte("x")})
	b := sqlitpl.NewRecord([]string{"tags", "id"}, []any{[]byte("x"), 1})
	c.Check(a.Equal(b), Equals, true)
	c.Check(a.String(), Not(Equals), b.String())

	b.Set("id", 2)
	c.Check(a.Equal(b), Equals, false)
	b.Set("id", 1)
	b.Set("extra", nil)
	c.Check(a.Equal(b), Equals, false)
}

func (s *RecordSuite) TestString(c *C) {
	r := sqlitpl.NewRecord([]string{"id", "name", "note"}, []any{int64(1), "a", nil})
	c.Check(r.String(), Equals, `Record{id: 1, name: "a", note: <nil>}`)
	c.Check(sqlitpl.Record{}.String(), Equals, "Record{}")
}

func (s *RecordSuite) TestMapIsCopy(c *C) {
	r := sqlitpl.NewRecord([]string{"id"}, []any{1})
	m := r.Map()
	m["id"] = 2
	v, _ := r.Get("id")
	c.Check(v, Equals, 1)
}
