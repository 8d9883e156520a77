/*
Package sqlitpl splits SQL query templates into literal text and embedded
expressions, and streams query results back as records with named fields.

# Templates

A template is ordinary query text with interpolation sites introduced by a
marker character, "$" by default:

	SELECT * FROM person WHERE name = $person.name AND age > ${min + 1}

[Interpolate] returns the template as a list of chunks. Each chunk is either a
[Literal], to be copied to the query verbatim, or an [Expression] holding the
raw text of an interpolation site:

	[Literal[SELECT * FROM person WHERE name = ] Expression[person.name]
	 Literal[ AND age > ] Expression[min + 1]]

Two forms of interpolation site are recognised:

 1. $name
    - A name made of letters, digits and underscores, followed by any chain
      of ".name" attributes and balanced (...) or [...] groups, e.g.
      $people[0].address.city or $fmt(a, b).

 2. ${expression}
    - Anything up to the matching closing brace. Braces may be nested and
      braces inside quoted strings are ignored.

"$$" stands for a single literal "$". A marker followed by anything else is
left in the text.

This package does not evaluate expressions. Deciding what each one stands for,
and whether it becomes a query parameter or literal text, is up to the caller.

# Results

A [RowStream] reads rows from a [Cursor] and returns each one as a [Record]
mapping column names to values. [NewSQLCursor] adapts the rows of a
database/sql query. A stream is read once, in order:

  - [RowStream.Next] returns the next record.
  - [RowStream.HasMore] checks for a next record without consuming it.
  - [RowStream.At] skips forward to a record by position. Positions already
    passed cannot be requested again.

A stream owns its cursor. [Use] runs a function on a stream and always closes
the cursor afterwards, whether or not all the records were read.
*/
package sqlitpl
