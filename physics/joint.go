package physics

// EnforceMaxDistance is a one-sided distance joint between the centres of a
// and b. When they are farther apart than maxLength the excess is removed by
// moving both bodies toward each other in proportion to their inverse mass,
// and the relative velocity that would separate them further is cancelled.
// Closer bodies are left alone so the rope can go slack.
//
// It reports whether the joint was taut.
func EnforceMaxDistance(a, b *Body, maxLength float64) bool {
	if a == nil || b == nil || maxLength <= 0 {
		return false
	}

	delta := b.Position().Sub(a.Position())
	dist := delta.Length()
	if dist <= maxLength || dist == 0 {
		return false
	}

	wa, wb := a.InverseMass(), b.InverseMass()
	w := wa + wb
	if w == 0 {
		return true
	}

	normal := delta.Scale(1 / dist)
	excess := dist - maxLength
	if wa > 0 {
		a.Move(normal.Scale(excess * wa / w))
	}
	// Whatever one body could not cover because a solid stopped it is taken
	// up by the other.
	if wb > 0 {
		pullWithin(b, a, maxLength)
	}
	if wa > 0 {
		pullWithin(a, b, maxLength)
	}

	// Positive means b is moving away from a along the joint.
	separating := b.Velocity.Sub(a.Velocity).Dot(normal)
	if separating > 0 {
		if wa > 0 {
			a.Velocity = a.Velocity.Add(normal.Scale(separating * wa / w))
		}
		if wb > 0 {
			b.Velocity = b.Velocity.Sub(normal.Scale(separating * wb / w))
		}
	}
	return true
}

// pullWithin moves body straight toward other until they are at most
// maxLength apart.
func pullWithin(body, other *Body, maxLength float64) {
	d := body.Position().Sub(other.Position())
	l := d.Length()
	if l <= maxLength {
		return
	}
	body.Move(d.Scale(-(l - maxLength) / l))
}
