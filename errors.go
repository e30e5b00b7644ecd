package assoctables

// DuplicateKey - Custom error to inform that a key is already present in a container that rejects duplicates
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "the element with this key already exists"
	}
	return E.msg
}

// Is - Matches any DuplicateKey regardless of message
func (E DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Matches any KeyNotFound regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// InvalidIterator - Custom error to inform that an iterator was used while positioned at the end, after the
// owning container was structurally modified, or together with a container it does not belong to
type InvalidIterator struct {
	msg string
}

// Error - Used to notify that the iterator can't be used
func (I InvalidIterator) Error() string {
	if I.msg == "" {
		return "invalid or end iterator"
	}
	return I.msg
}

// Is - Matches any InvalidIterator regardless of message
func (I InvalidIterator) Is(target error) bool {
	_, ok := target.(InvalidIterator)
	return ok
}
