package reactive

// DefineReactive turns key into a reactive property of d holding initial.
//
// Reads made while a computed value is being collected subscribe its flush callback,
// once per read. Writing a value shallow-equal to the current one does nothing.
// Otherwise onChange (if any) is called synchronously with the new value,
// a flush of the subscribers is scheduled on the record's runtime, and the value is stored.
//
// Defining a key that is already reactive ignores initial: the key keeps its current
// value and subscribers, and only the change handler is replaced when onChange is not nil.
func DefineReactive(d *Data, key string, initial any, onChange func(any)) {
	if d == nil {
		panic("reactive: nil data")
	}

	d.define(key, initial, onChange)
}
