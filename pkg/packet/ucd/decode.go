// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// ErrMalformed is returned, wrapped, when a message cannot be decoded at all.
var ErrMalformed = errors.New("malformed UCD message")

type Decoder struct {
	dict   *Dictionary
	logger *zap.Logger
}

type Option func(*Decoder)

func WithDictionary(dict *Dictionary) Option {
	return func(d *Decoder) {
		d.dict = dict
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		dict:   DefaultDictionary,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) Dictionary() *Dictionary {
	return d.dict
}

var defaultDecoder = NewDecoder()

// Decode decodes data with the default dictionary.
func Decode(data []byte) (*Message, error) {
	return defaultDecoder.Decode(data)
}

// Decode decodes one UCD message. data is the management message payload
// starting at the Upstream Channel ID; its length is the total reported length.
// Length mismatches are recorded as diagnostics on the returned message, while
// a field that extends past the end of data fails the whole call.
func (d *Decoder) Decode(data []byte) (*Message, error) {
	if len(data) < HeaderLength {
		return nil, fmt.Errorf("data is too short: expected at least %d bytes, but got %d bytes for UCD header: %w", HeaderLength, len(data), ErrMalformed)
	}
	data = slices.Clone(data)

	msg := &Message{
		UpstreamChannelID:   ChannelID(data[UpstreamChannelIDIndex]),
		ConfigChangeCount:   data[ConfigChangeCountIndex],
		MiniSlotSize:        data[MiniSlotSizeIndex],
		DownstreamChannelID: data[DownstreamChannelIDIndex],
		Length:              len(data),
		dict:                d.dict,
	}

	w := &walker{
		dict:   d.dict,
		logger: d.logger,
		data:   data,
	}
	records, err := w.walk(HeaderLength)
	if err != nil {
		d.logger.Debug("drop malformed UCD message", zap.Error(err), zap.Int("length", len(data)))
		return nil, err
	}
	msg.Records = records

	d.logger.Debug("decoded UCD message", zap.Object("message", msg))
	return msg, nil
}

// walker owns the cursor of one Decode call.
type walker struct {
	dict   *Dictionary
	logger *zap.Logger
	data   []byte
}

func (w *walker) walk(pos int) ([]*TopLevelRecord, error) {
	var records []*TopLevelRecord
	for pos < len(w.data) {
		rec, err := w.readRecord(pos)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		pos = rec.End()
	}
	return records, nil
}

func (w *walker) readRecord(pos int) (*TopLevelRecord, error) {
	if remain := len(w.data) - pos; remain < TLVHeaderLength {
		return nil, fmt.Errorf("data is too short: expected at least %d bytes, but got %d bytes for TLV header at offset %d: %w", TLVHeaderLength, remain, pos, ErrMalformed)
	}

	rec := &TopLevelRecord{
		Type:   TLVType(w.data[pos]),
		Length: w.data[pos+1],
		Offset: pos,
	}
	if rec.End() > len(w.data) {
		return nil, fmt.Errorf("data length mismatch: %s at offset %d declares %d bytes, but only %d bytes remain: %w", rec.Type, pos, rec.Length, len(w.data)-rec.ValueOffset(), ErrMalformed)
	}
	rec.Raw = w.data[rec.ValueOffset():rec.End()]

	field, ok := w.dict.Channel(rec.Type)
	if !ok {
		return rec, nil
	}
	rec.Field = field

	if variant, ok := rec.Type.BurstVariant(); ok {
		if bd := w.walkBurst(rec, variant); bd != nil {
			rec.Value = bd
		}
		return rec, nil
	}

	if !field.CheckLength(rec.Length) {
		w.report(rec, wrongLength(rec.Offset, rec.Length))
		return rec, nil
	}
	rec.Value = field.decode(rec.Raw)
	return rec, nil
}

// report attaches a diagnostic to rec. It never interrupts the walk.
func (w *walker) report(rec *TopLevelRecord, diag Diagnostic) {
	rec.Diagnostics = append(rec.Diagnostics, diag)
	w.logger.Debug("UCD TLV diagnostic", zap.String("type", rec.Type.String()), zap.Object("diagnostic", diag))
}
