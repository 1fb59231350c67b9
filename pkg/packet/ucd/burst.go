// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

// walkBurst decodes the value of a burst descriptor record: one IUC byte
// followed by sub-TLVs filling the rest of rec.Raw. No sub-record is read
// beyond rec.Raw. It returns nil when there is no IUC byte.
func (w *walker) walkBurst(rec *TopLevelRecord, variant BurstVariant) *BurstDescriptor {
	if len(rec.Raw) < 1 {
		w.report(rec, burstTooShort(rec.Offset, rec.Length))
		return nil
	}

	bd := &BurstDescriptor{
		Variant: variant,
		IUC:     IUC(rec.Raw[0]),
		Offset:  rec.ValueOffset(),
	}

	sub := rec.Raw[1:]
	base := bd.Offset + 1
	pos := 0
	for pos < len(sub) {
		remain := len(sub) - pos
		if remain < TLVHeaderLength {
			w.report(rec, overrun(base+pos, 0, remain))
			break
		}

		sr := &BurstSubRecord{
			Type:   SubTLVType(sub[pos]),
			Length: sub[pos+1],
			Offset: base + pos,
		}
		end := pos + TLVHeaderLength + int(sr.Length)
		if end > len(sub) {
			w.report(rec, overrun(sr.Offset, sr.Length, remain))
			break
		}
		sr.Raw = sub[pos+TLVHeaderLength : end]
		w.decodeSubRecord(rec, variant, sr)

		bd.SubRecords = append(bd.SubRecords, sr)
		pos = end
	}
	return bd
}

func (w *walker) decodeSubRecord(rec *TopLevelRecord, variant BurstVariant, sr *BurstSubRecord) {
	field, ok := w.dict.Burst(variant, sr.Type)
	if !ok {
		return
	}
	sr.Field = field
	if !field.CheckLength(sr.Length) {
		w.report(rec, wrongLength(sr.Offset, sr.Length))
		return
	}
	sr.Value = field.decodeScalar(sr.Raw)
}
