package item

// Copy produces a deep, independent copy of it: no node in the result
// shares storage or a refcount with any node of it, and the indefinite or
// definite status of every container and string in the result, at every
// depth, matches it exactly. Every returned node starts with a refcount
// of 1.
func Copy(it *Item) (*Item, error) {
	switch it.major {
	case UnsignedInt:
		return NewUint(it.width, it.uval)
	case NegativeInt:
		return NewNegInt(it.width, it.uval)
	case ByteString, TextString:
		return copyString(it, false)
	case Array:
		return copyArray(it, false)
	case Map:
		return copyMap(it, false)
	case Tag:
		return copyTag(it, false)
	case FloatOrSimple:
		return copyFloat(it)
	default:
		return nil, ErrInvalidMajor
	}
}

// CopyDefinite produces a deep copy of it like Copy, except that every
// indefinite ByteString, TextString, Array, or Map reachable in it, at any
// depth, becomes a definite item: string chunks concatenate into one
// buffer, and array/map containers become definite with their observed
// size. Integer, float, and tag semantics are preserved exactly as Copy
// would preserve them.
func CopyDefinite(it *Item) (*Item, error) {
	switch it.major {
	case ByteString, TextString:
		return copyString(it, true)
	case Array:
		return copyArray(it, true)
	case Map:
		return copyMap(it, true)
	case Tag:
		return copyTag(it, true)
	default:
		return Copy(it)
	}
}

func copyString(it *Item, collapse bool) (*Item, error) {
	if it.definite {
		b := make([]byte, len(it.bytesVal))
		copy(b, it.bytesVal)
		return FromOwnedBytes(it.major, b)
	}
	if !collapse {
		var out *Item
		var err error
		if it.major == ByteString {
			out, err = NewByteStringIndefinite()
		} else {
			out, err = NewTextStringIndefinite()
		}
		if err != nil {
			return nil, err
		}
		for _, chunk := range it.chunks {
			cp, err := copyString(chunk, false)
			if err != nil {
				Decref(&out)
				return nil, err
			}
			if it.major == ByteString {
				err = ByteStringAddChunk(out, cp)
			} else {
				err = StringAddChunk(out, cp)
			}
			if err != nil {
				Decref(&cp)
				Decref(&out)
				return nil, err
			}
		}
		return out, nil
	}

	total := 0
	for _, chunk := range it.chunks {
		total += len(chunk.bytesVal)
	}
	bb := GetMinSize(total)
	defer PutByteBuffer(bb)
	for _, chunk := range it.chunks {
		bb.Append(chunk.bytesVal)
	}
	b := make([]byte, bb.Len())
	copy(b, bb.Bytes())
	return FromOwnedBytes(it.major, b)
}

// copyArray copies it, recursing into each element with copyElem under the
// same collapse policy, matching the real cbor_copy/cbor_copy_definite
// split: collapse=false (Copy) preserves it.definite at every depth;
// collapse=true (CopyDefinite) always produces a definite array sized to
// the observed element count, the same as cbor_new_definite_array in
// cbor_copy_definite.
func copyArray(it *Item, collapse bool) (*Item, error) {
	var out *Item
	var err error
	if collapse || it.definite {
		out, err = NewArrayDefinite(uint64(len(it.chunks)))
	} else {
		out, err = NewArrayIndefinite()
	}
	if err != nil {
		return nil, err
	}
	for _, elem := range it.chunks {
		cp, err := copyElem(elem, collapse)
		if err != nil {
			Decref(&out)
			return nil, err
		}
		if err := ArrayPush(out, cp); err != nil {
			Decref(&cp)
			Decref(&out)
			return nil, err
		}
	}
	return out, nil
}

// copyMap follows the same collapse policy as copyArray: collapse=true
// always yields a definite map sized to the observed pair count, the same
// as cbor_new_definite_map in cbor_copy_definite.
func copyMap(it *Item, collapse bool) (*Item, error) {
	var out *Item
	var err error
	if collapse || it.definite {
		out, err = NewMapDefinite(uint64(len(it.pairs)))
	} else {
		out, err = NewMapIndefinite()
	}
	if err != nil {
		return nil, err
	}
	for _, p := range it.pairs {
		k, err := copyElem(p.Key, collapse)
		if err != nil {
			Decref(&out)
			return nil, err
		}
		v, err := copyElem(p.Value, collapse)
		if err != nil {
			Decref(&k)
			Decref(&out)
			return nil, err
		}
		if err := MapAdd(out, k, v); err != nil {
			Decref(&k)
			Decref(&v)
			Decref(&out)
			return nil, err
		}
	}
	return out, nil
}

func copyTag(it *Item, collapse bool) (*Item, error) {
	out, err := NewTag(it.tagValue)
	if err != nil {
		return nil, err
	}
	if it.tagChild != nil {
		child, err := copyElem(it.tagChild, collapse)
		if err != nil {
			Decref(&out)
			return nil, err
		}
		if err := TagSetChild(out, child); err != nil {
			Decref(&child)
			Decref(&out)
			return nil, err
		}
	}
	return out, nil
}

// copyElem copies a single child under the collapse policy of the
// enclosing Copy/CopyDefinite call, dispatching on major type the same
// way Copy/CopyDefinite do at the top level.
func copyElem(it *Item, collapse bool) (*Item, error) {
	switch it.major {
	case ByteString, TextString:
		return copyString(it, collapse)
	case Array:
		return copyArray(it, collapse)
	case Map:
		return copyMap(it, collapse)
	case Tag:
		return copyTag(it, collapse)
	default:
		if it.major == UnsignedInt {
			return NewUint(it.width, it.uval)
		}
		if it.major == NegativeInt {
			return NewNegInt(it.width, it.uval)
		}
		return copyFloat(it)
	}
}

func copyFloat(it *Item) (*Item, error) {
	switch it.kind {
	case Half:
		return newFloat(Half, it.f32, 0)
	case Single:
		return newFloat(Single, it.f32, 0)
	case Double:
		return newFloat(Double, 0, it.f64)
	default:
		return NewSimple(it.simpleCode)
	}
}
