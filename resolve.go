package utsushi

// ChangedLineThreshold is the similarity above which a removed line and the
// added line at the same position in a change block are shown as one changed
// line. At or below it the two are shown as unrelated.
const ChangedLineThreshold = 0.3

// ModifiedLineThreshold is the similarity above which two lines are classified
// as ChangeModified rather than ChangeDifferent.
const ModifiedLineThreshold = 0.5

// block is a unit of presentation: either a run of equal lines, or a run of
// removed lines followed by the added lines that replace them.
type block struct {
	equal   []string
	removed []string
	added   []string
}

// groupBlocks groups each delete run with the insert run that immediately
// follows it. An insert run with no preceding delete run forms its own block.
func groupBlocks(edits []Edit) []block {
	var blocks []block
	i := 0
	for i < len(edits) {
		if edits[i].Op == OpEqual {
			var b block
			for i < len(edits) && edits[i].Op == OpEqual {
				b.equal = append(b.equal, edits[i].Lines...)
				i++
			}
			blocks = append(blocks, b)
			continue
		}

		var b block
		for i < len(edits) && edits[i].Op == OpDelete {
			b.removed = append(b.removed, edits[i].Lines...)
			i++
		}
		for i < len(edits) && edits[i].Op == OpInsert {
			b.added = append(b.added, edits[i].Lines...)
			i++
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Resolve turns an edit script into a side-by-side DiffResult. Scorer decides
// whether a removed/added pair is a changed line; words supplies the spans of
// changed lines.
func Resolve(edits []Edit, scorer SimilarityScorer, words WordComparer) DiffResult {
	r := &resolver{
		scorer: scorer,
		words:  words,
		result: DiffResult{
			Left:  []LineRecord{},
			Right: []LineRecord{},
		},
	}
	for _, b := range groupBlocks(edits) {
		if b.equal != nil {
			r.emitEqual(b.equal)
			continue
		}
		r.emitChangeBlock(b.removed, b.added)
	}
	return r.result
}

// resolver accumulates rows while keeping a line counter per side.
type resolver struct {
	scorer    SimilarityScorer
	words     WordComparer
	leftLine  int
	rightLine int
	result    DiffResult
}

func (r *resolver) emitEqual(lines []string) {
	for _, line := range lines {
		r.leftLine++
		r.rightLine++
		r.push(
			LineRecord{LineNumber: r.leftLine, Content: line, Kind: LineUnchanged},
			LineRecord{LineNumber: r.rightLine, Content: line, Kind: LineUnchanged},
		)
		r.result.Stats.Unchanged++
	}
}

func (r *resolver) emitChangeBlock(removed, added []string) {
	n := max(len(removed), len(added))
	for j := range n {
		switch {
		case j < len(removed) && j < len(added):
			if r.scorer.Similarity(removed[j], added[j]) > ChangedLineThreshold {
				r.emitChanged(removed[j], added[j])
			} else {
				r.emitRemoved(removed[j])
				r.emitAdded(added[j])
			}
		case j < len(removed):
			r.emitRemoved(removed[j])
		default:
			r.emitAdded(added[j])
		}
	}
}

func (r *resolver) emitChanged(oldLine, newLine string) {
	left, right := r.words.CompareWords(oldLine, newLine)
	r.leftLine++
	r.rightLine++
	r.push(
		LineRecord{LineNumber: r.leftLine, Content: oldLine, Kind: LineChanged, Spans: left},
		LineRecord{LineNumber: r.rightLine, Content: newLine, Kind: LineChanged, Spans: right},
	)
	r.result.Stats.Changed++
}

func (r *resolver) emitRemoved(line string) {
	r.leftLine++
	r.push(
		LineRecord{LineNumber: r.leftLine, Content: line, Kind: LineRemoved},
		LineRecord{Kind: LineEmpty},
	)
	r.result.Stats.Removed++
}

func (r *resolver) emitAdded(line string) {
	r.rightLine++
	r.push(
		LineRecord{Kind: LineEmpty},
		LineRecord{LineNumber: r.rightLine, Content: line, Kind: LineAdded},
	)
	r.result.Stats.Added++
}

func (r *resolver) push(left, right LineRecord) {
	r.result.Left = append(r.result.Left, left)
	r.result.Right = append(r.result.Right, right)
}
