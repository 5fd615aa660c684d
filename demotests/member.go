package demotests

import (
	"fmt"

	"github.com/launchdarkly/fluent-test-harness/fluent"
)

// Member is the sample entity used by the collection assertions. In a real application the
// list of members would come from a database query.
type Member struct {
	no   int
	id   string
	name string
	age  int
}

func NewMember(no int, id, name string, age int) Member {
	return Member{no: no, id: id, name: name, age: age}
}

func (m Member) No() int      { return m.no }
func (m Member) ID() string   { return m.id }
func (m Member) Name() string { return m.name }
func (m Member) Age() int     { return m.age }

func (m Member) String() string {
	return fmt.Sprintf("Member(%d, %s, %s, %d)", m.no, m.id, m.name, m.age)
}

// MemberAttributes lets members be filtered by attribute name.
var MemberAttributes = fluent.Attributes[Member]{
	"no":   func(m Member) interface{} { return m.No() },
	"id":   func(m Member) interface{} { return m.ID() },
	"name": func(m Member) interface{} { return m.Name() },
	"age":  func(m Member) interface{} { return m.Age() },
}

// SampleMembers returns the five members used by the filtering examples.
func SampleMembers() []Member {
	return []Member{
		NewMember(1, "user01", "Hong Gildong", 20),
		NewMember(2, "user02", "Yu Gwansun", 15),
		NewMember(3, "user03", "Yi Sunsin", 40),
		NewMember(4, "user04", "Shin Saimdang", 50),
		NewMember(5, "user05", "Im Kkeokjeong", 20),
	}
}
