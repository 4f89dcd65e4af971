package form

// Model holds the registration form state. It is not safe for concurrent use;
// every call completes, notifications included, before returning.
type Model struct {
	rules   *RuleSet
	values  [fieldCount]string
	errors  [fieldCount][]string
	touched [fieldCount]bool

	valueChanged     channel
	errorsChanged    channel
	errorTextChanged channel
}

func New(rules *RuleSet) *Model {
	if rules == nil {
		rules = RegistrationRules()
	}
	return &Model{rules: rules}
}

// Set stores value and revalidates f and its dependents. Setting the value a
// field already holds does nothing.
func (m *Model) Set(f Field, value string) {
	mustValid(f)
	if m.values[f] == value {
		return
	}

	m.values[f] = value
	m.valueChanged.emit(f)

	m.validate(f)
	for _, dependent := range m.rules.Dependents(f) {
		m.validate(dependent)
	}
}

// ValidateAll runs every field's chain in declaration order.
func (m *Model) ValidateAll() {
	for _, f := range Fields() {
		m.validate(f)
	}
}

func (m *Model) validate(f Field) {
	m.errors[f] = nil

	messages := m.rules.Chain(f).Evaluate(m.values[f], m.Values())
	if len(messages) > 0 {
		m.errors[f] = messages
	}
	m.touched[f] = true

	m.errorsChanged.emit(f)
	m.errorTextChanged.emit(f)
}

func (m *Model) Value(f Field) string {
	mustValid(f)
	return m.values[f]
}

func (m *Model) Values() Values {
	return Values{values: m.values}
}

// ErrorText returns the first error of f, or "" when f is valid.
func (m *Model) ErrorText(f Field) string {
	mustValid(f)
	if len(m.errors[f]) == 0 {
		return ""
	}
	return m.errors[f][0]
}

// Errors returns a copy of every message of f in the order the chain produced them.
func (m *Model) Errors(f Field) []string {
	mustValid(f)
	if len(m.errors[f]) == 0 {
		return nil
	}
	return append([]string(nil), m.errors[f]...)
}

func (m *Model) HasErrors() bool {
	for _, messages := range m.errors {
		if len(messages) > 0 {
			return true
		}
	}
	return false
}

func (m *Model) Touched(f Field) bool {
	mustValid(f)
	return m.touched[f]
}

// IsValid reports whether every field was validated and none failed.
func (m *Model) IsValid() bool {
	for _, t := range m.touched {
		if !t {
			return false
		}
	}
	return !m.HasErrors()
}

func (m *Model) OnValueChanged(l Listener) Subscription {
	return m.subscribe(&m.valueChanged, l)
}

func (m *Model) OnErrorsChanged(l Listener) Subscription {
	return m.subscribe(&m.errorsChanged, l)
}

func (m *Model) OnErrorTextChanged(l Listener) Subscription {
	return m.subscribe(&m.errorTextChanged, l)
}

func (m *Model) subscribe(c *channel, l Listener) Subscription {
	if l == nil {
		return Subscription{}
	}
	id := c.subscribe(l)
	return Subscription{cancel: func() { c.unsubscribe(id) }}
}

type Snapshot struct {
	Values    map[string]string   `json:"values"`
	Errors    map[string][]string `json:"errors"`
	ErrorText map[string]string   `json:"errorText"`
	HasErrors bool                `json:"hasErrors"`
}

// Snapshot copies the current state. Errors only lists failing fields.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Values:    m.Values().Map(),
		Errors:    make(map[string][]string),
		ErrorText: make(map[string]string, fieldCount),
		HasErrors: m.HasErrors(),
	}
	for _, f := range Fields() {
		s.ErrorText[f.String()] = m.ErrorText(f)
		if errs := m.Errors(f); errs != nil {
			s.Errors[f.String()] = errs
		}
	}
	return s
}
