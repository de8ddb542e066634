package custdb

type Field string

const (
	First Field = "first"
	Last  Field = "last"
	Email Field = "email"
	Age   Field = "age"
)

// Fields lists the customer fields in display order.
func Fields() []Field {
	return []Field{First, Last, Email, Age}
}

// Record is one customer. It has no mutating methods.
type Record struct {
	fields map[Field]Value
}

func NewRecord(fields map[Field]Value) Record {
	cp := make(map[Field]Value, len(fields))
	for f, v := range fields {
		cp[f] = v
	}

	return Record{fields: cp}
}

func (r Record) Value(f Field) (Value, bool) {
	v, ok := r.fields[f]
	return v, ok
}

func (r Record) Datatype(f Field) (Datatype, bool) {
	v, ok := r.fields[f]
	if !ok {
		return invalidDatatype, false
	}

	return v.Datatype(), true
}

func (r Record) Len() int {
	return len(r.fields)
}

// Dataset maps identifiers to records and is handed to New.
type Dataset map[ID]Record

// SeedDataset returns the single example customer stored under "one".
func SeedDataset() Dataset {
	return Dataset{
		NewID("one"): NewRecord(map[Field]Value{
			First: StringValue("Yukihiro"),
			Last:  StringValue("Matsumoto"),
			Email: StringValue("matz@bostonrb.org"),
			Age:   IntegerValue(48),
		}),
	}
}
