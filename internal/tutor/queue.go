package tutor

// buildQueue turns an understanding assessment into the ordered list of
// concepts to explain, plus the unmentioned subset.
//
// Order: concepts the learner doesn't know, then concepts they didn't
// mention, then the target. Duplicates and concepts the learner confirmed
// knowing are dropped. An empty result falls back to just the target, so
// the queue is never empty.
func buildQueue(assessment *orderedAssessment, target string) (queue []string, unmentioned []string) {
	var unknown []string
	known := make(map[string]bool)

	for _, name := range assessment.names {
		switch status := assessment.status(name); {
		case status == nil:
			unmentioned = append(unmentioned, name)
		case *status:
			known[name] = true
		default:
			unknown = append(unknown, name)
		}
	}

	candidates := make([]string, 0, len(unknown)+len(unmentioned)+1)
	candidates = append(candidates, unknown...)
	candidates = append(candidates, unmentioned...)
	candidates = append(candidates, target)

	seen := make(map[string]bool, len(known))
	for k := range known {
		seen[k] = true
	}
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true
		queue = append(queue, name)
	}

	if len(queue) == 0 {
		queue = []string{target}
	}
	return queue, unmentioned
}
