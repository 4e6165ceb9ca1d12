// Package cipher runs the VIC pipeline over an input record: it derives the
// key, builds the straddling checkerboard and decrypts or encrypts the
// record's message with it.
package cipher

import (
	"context"
	"fmt"
	"strings"
	"vic/pkg/domain"
	"vic/pkg/logger"
	"vic/pkg/serrors"
	"vic/pkg/vic"

	"go.uber.org/zap"
)

const (
	// IndicatorLength is the size of the group hidden in every coded message.
	IndicatorLength = 5
	// AgentIDLength is the number of digits in an agent identifier.
	AgentIDLength = 5
	// minDateLength covers the five key digits plus the indicator position.
	minDateLength = 6
)

// cipher is the concrete implementation of the Cipher interface.
type cipher struct{}

// New returns a Cipher running the VIC pipeline.
func New() Cipher {
	return cipher{}
}

// DeriveKey turns the agent's secret material into the ten-digit permutation
// heading the checkerboard:
//
//	seed     = ChainExtend(NoCarryAdd(AgentID, Date[:5]), 10)
//	combined = NoCarryAdd(seed, DigitPermutation(Phrase))
//	key      = DigitPermutation(combined)
func DeriveKey(rec domain.Record) (string, error) {
	if len(rec.AgentID) != AgentIDLength || !vic.IsDigits(rec.AgentID) {
		return "", serrors.With(serrors.ErrInvalidRecord, "agent ID %q must be %d digits", rec.AgentID, AgentIDLength)
	}
	if len(rec.Date) < minDateLength || !vic.IsDigits(rec.Date) {
		return "", serrors.With(serrors.ErrInvalidRecord, "date %q must be at least %d digits", rec.Date, minDateLength)
	}

	seed, err := vic.NoCarryAdd(rec.AgentID, rec.Date[:AgentIDLength])
	if err != nil {
		return "", fmt.Errorf("could not add date to agent ID: %w", err)
	}
	seed, err = vic.ChainExtend(seed, vic.Width)
	if err != nil {
		return "", fmt.Errorf("could not extend seed: %w", err)
	}
	phrase, err := vic.DigitPermutation(rec.Phrase)
	if err != nil {
		return "", fmt.Errorf("could not permute phrase: %w", err)
	}
	combined, err := vic.NoCarryAdd(seed, phrase)
	if err != nil {
		return "", fmt.Errorf("could not combine seed and phrase: %w", err)
	}
	key, err := vic.DigitPermutation(combined)
	if err != nil {
		return "", fmt.Errorf("could not permute combined key: %w", err)
	}

	return key, nil
}

// Board derives the key of rec and lays out its checkerboard.
func (c cipher) Board(ctx context.Context, rec domain.Record) (*vic.Checkerboard, error) {
	key, err := DeriveKey(rec)
	if err != nil {
		return nil, stageErr(StageDeriveKey, err)
	}
	logger.Debug(ctx, "derived key", zap.String("key", key))

	board, err := vic.BuildCheckerboard(key, rec.Anagram)
	if err != nil {
		return nil, stageErr(StageBuildBoard, err)
	}
	logger.Debug(ctx, "built checkerboard", zap.ByteString("escape", board.Escape[:]))
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "checkerboard layout", zap.String("board", board.String()))
	}

	return board, nil
}

// Decrypt removes the indicator group from the coded message and decodes the
// rest against the record's checkerboard.
func (c cipher) Decrypt(ctx context.Context, rec domain.Record) (*domain.Decryption, error) {
	board, err := c.Board(ctx, rec)
	if err != nil {
		return nil, err
	}

	message, indicator, err := StripIndicator(rec.Message, indicatorPosition(rec.Date))
	if err != nil {
		return nil, stageErr(StageStripIndicator, err)
	}
	logger.Debug(ctx, "stripped indicator", zap.String("indicator", indicator), zap.Int("digits", len(message)))

	plaintext, err := Decode(board, vic.NewCodeIndex(board), message)
	if err != nil {
		return nil, stageErr(StageDecode, err)
	}

	return &domain.Decryption{
		Plaintext: plaintext,
		Key:       string(board.Header[:]),
		Escape:    board.Escape,
		Indicator: indicator,
	}, nil
}

// Encrypt is the inverse of Decrypt: the record's message is taken as
// plaintext, encoded letter by letter and the agent ID is inserted as the
// indicator group.
func (c cipher) Encrypt(ctx context.Context, rec domain.Record) (string, error) {
	board, err := c.Board(ctx, rec)
	if err != nil {
		return "", err
	}

	encoded, err := Encode(vic.NewCodeIndex(board), rec.Message)
	if err != nil {
		return "", stageErr(StageEncode, err)
	}

	pos := min(indicatorPosition(rec.Date), len(encoded))
	logger.Debug(ctx, "inserting indicator", zap.Int("position", pos))

	return encoded[:pos] + rec.AgentID + encoded[pos:], nil
}

// StripIndicator cuts the IndicatorLength digits starting at pos out of
// message. pos is pulled back when fewer than IndicatorLength digits follow
// it; a message shorter than the indicator is rejected.
func StripIndicator(message string, pos int) (string, string, error) {
	if len(message) < IndicatorLength {
		return "", "", serrors.With(serrors.ErrInvalidMessage,
			"message has %d digits, need at least %d", len(message), IndicatorLength)
	}
	if !vic.IsDigits(message) {
		return "", "", serrors.With(serrors.ErrInvalidRecord, "message %q must be digits", message)
	}
	if pos < 0 {
		return "", "", serrors.With(serrors.ErrInvalidMessage, "negative indicator position %d", pos)
	}

	if len(message)-pos < IndicatorLength {
		pos = len(message) - IndicatorLength
	}

	return message[:pos] + message[pos+IndicatorLength:], message[pos : pos+IndicatorLength], nil
}

// Decode splits message into codes, reading two digits whenever the current
// digit is an escape digit of board, and maps every code to its letter.
func Decode(board *vic.Checkerboard, idx *vic.CodeIndex, message string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(message))

	for i := 0; i < len(message); {
		n := 1
		if board.IsEscape(message[i]) {
			n = 2
		}
		if i+n > len(message) {
			return "", serrors.With(serrors.ErrCodeNotFound, "message ends inside code %q", message[i:])
		}

		code := message[i : i+n]
		letter, ok := idx.LetterOf(code)
		if !ok {
			return "", serrors.With(serrors.ErrCodeNotFound, "no letter for code %q at offset %d", code, i)
		}
		sb.WriteByte(letter)
		i += n
	}

	return sb.String(), nil
}

// Encode replaces every letter of plaintext with its code. Case is ignored
// and whitespace is dropped.
func Encode(idx *vic.CodeIndex, plaintext string) (string, error) {
	var sb strings.Builder
	sb.Grow(2 * len(plaintext))

	for i := 0; i < len(plaintext); i++ {
		c := plaintext[i]
		switch {
		case c == ' ', c == '\t', c == '\n', c == '\r':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}

		code, ok := idx.CodeOf(c)
		if !ok {
			return "", serrors.With(serrors.ErrCodeNotFound, "no code for %q at offset %d", plaintext[i], i)
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// indicatorPosition reads the sixth date digit. Dates are validated by
// DeriveKey before this is called.
func indicatorPosition(date string) int {
	return int(date[minDateLength-1] - '0')
}
