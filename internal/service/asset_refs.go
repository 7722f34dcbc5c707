package service

// refCounter applies reference-count deltas derived from content changes to
// the asset store. Counts move by exactly one per distinct asset id per post,
// no matter how often a link repeats in the text.
type refCounter struct {
	assets AssetStore
}

func (r refCounter) add(ids []uint) error {
	for _, id := range ids {
		if err := r.assets.IncrementUseCount(id); err != nil {
			return err
		}
	}
	return nil
}

func (r refCounter) remove(ids []uint) error {
	for _, id := range ids {
		if err := r.assets.DecrementUseCount(id); err != nil {
			return err
		}
	}
	return nil
}

// apply moves the counters from the old reference set to the new one. Only
// the symmetric difference is touched: ids referenced both before and after
// need no store operation, since their net delta is zero.
func (r refCounter) apply(oldRefs, newRefs []uint) error {
	removed, added := diffRefs(oldRefs, newRefs)
	if err := r.remove(removed); err != nil {
		return err
	}
	return r.add(added)
}

// diffRefs splits the transition between two reference sets into the ids
// only the old set holds (removed) and the ids only the new set holds
// (added). Inputs are distinct-id slices as produced by ScanAssetRefs.
func diffRefs(oldRefs, newRefs []uint) (removed, added []uint) {
	inNew := make(map[uint]struct{}, len(newRefs))
	for _, id := range newRefs {
		inNew[id] = struct{}{}
	}
	inOld := make(map[uint]struct{}, len(oldRefs))
	for _, id := range oldRefs {
		inOld[id] = struct{}{}
	}

	for _, id := range oldRefs {
		if _, ok := inNew[id]; !ok {
			removed = append(removed, id)
		}
	}
	for _, id := range newRefs {
		if _, ok := inOld[id]; !ok {
			added = append(added, id)
		}
	}
	return removed, added
}
