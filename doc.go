/*
Package formdoc implements typed, schema-validated XML documents.

A Schema describes the elements a document may contain: a root element name,
a target namespace, and a tree of Models. Each Model is an ordered list of
fields (Props); a field is either a scalar (int, float, string, bool, date,
dateTime, enum) or a child element of another model, and a child element may
be declared repeated.

A Document owns a tree of Nodes. Each field of a node is reached through a
Slot, and is in one of three states:

 1. Absent: the element does not appear.
 2. Nil: the element appears with xsi:nil="true".
 3. Present: the element appears with a value.

Absent fields read as defaults (0, "", false, or null for dates, enums and
children). Writes are validated against the schema; a rejected write leaves
the field untouched.

# XML encoding

Parse and Serialize (and the streaming Decode and Encode) use the schema's
namespace as the default namespace. Fields are written in declaration order
and must appear in declaration order when parsing. Serializing a document and
parsing the result yields an equal document.

# Concurrency

A Document may be used from multiple goroutines. Each node guards its own
fields with a mutex, and individual operations are atomic; sequences of
operations are not.
*/
package formdoc
