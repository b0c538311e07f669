package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"textkit/internal/config"
	"textkit/internal/logging"
	"textkit/internal/textproc"
	"textkit/internal/textutil"
)

// MaxLineBytes bounds a single request line.
const MaxLineBytes = 16 << 20

// Defaults supplies option values for fields a request leaves out.
type Defaults struct {
	MinLength     int
	MaxLength     int
	Sanitize      textproc.SanitizeOptions
	Normalization textutil.Normalization
}

// DefaultsFromConfig maps configuration onto batch defaults.
func DefaultsFromConfig(cfg *config.Config) Defaults {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return Defaults{
		MinLength: cfg.Length.Min,
		MaxLength: cfg.Length.Max,
		Sanitize: textproc.SanitizeOptions{
			AllowNumbers:   cfg.Sanitize.AllowNumbers,
			AllowSpaces:    cfg.Sanitize.AllowSpaces,
			AllowedSpecial: cfg.Sanitize.AllowedSpecialChars,
		},
		Normalization: cfg.Normalization(),
	}
}

// Driver dispatches requests to a Processor.
type Driver struct {
	proc     *textproc.Processor
	defaults Defaults
	logger   *slog.Logger
	newID    func() string
	maxLine  int
}

// NewDriver constructs a Driver. A nil processor gets a fresh one.
func NewDriver(proc *textproc.Processor, defaults Defaults, logger *slog.Logger) *Driver {
	if proc == nil {
		proc = textproc.New(textproc.WithLogger(logger))
	}
	return &Driver{
		proc:     proc,
		defaults: defaults,
		logger:   logging.NewComponentLogger(logger, "batch"),
		newID:    uuid.NewString,
		maxLine:  MaxLineBytes,
	}
}

// Handle executes a single request.
func (d *Driver) Handle(ctx context.Context, req Request) Result {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = d.newID()
	}
	res := Result{ID: id, Op: req.Op}

	op, ok := canonicalOp(req.Op)
	if !ok {
		res.Error = fmt.Errorf("%w %q", ErrUnknownOperation, req.Op).Error()
		return res
	}
	res.Op = op

	logger := logging.WithContext(logging.WithRequestID(ctx, id), d.logger)
	value, err := d.dispatch(op, req)
	if err != nil {
		logger.Debug("request failed", logging.String(logging.FieldOperation, op), logging.Error(err))
		res.Error = err.Error()
		return res
	}
	res.OK = true
	res.Result = value
	return res
}

func (d *Driver) dispatch(op string, req Request) (any, error) {
	text := d.prepare(req.Text)
	switch op {
	case OpValidate:
		minLength := d.defaults.MinLength
		if req.MinLength != nil {
			minLength = *req.MinLength
		}
		maxLength := d.defaults.MaxLength
		if req.MaxLength != nil {
			maxLength = *req.MaxLength
		}
		return d.proc.ValidateLengthValue(text, minLength, maxLength), nil
	case OpCount:
		counts, err := d.proc.CountUniqueValue(text)
		if err != nil {
			return nil, err
		}
		return textproc.StringKeys(counts), nil
	case OpNumbers:
		numbers, err := d.proc.ExtractNumbersValue(text)
		if err != nil {
			return nil, err
		}
		return JSONNumbers(numbers), nil
	case OpSanitize:
		return d.proc.SanitizeValue(text, d.sanitizeOptions(req))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOperation, op)
	}
}

// prepare applies the configured normalization to text values and leaves
// everything else for the processor to reject.
func (d *Driver) prepare(v any) any {
	if s, ok := v.(string); ok {
		return d.defaults.Normalization.Apply(s)
	}
	return v
}

func (d *Driver) sanitizeOptions(req Request) textproc.SanitizeOptions {
	opts := d.defaults.Sanitize
	if req.AllowNumbers != nil {
		opts.AllowNumbers = *req.AllowNumbers
	}
	if req.AllowSpaces != nil {
		opts.AllowSpaces = *req.AllowSpaces
	}
	if req.AllowedSpecialChars != nil {
		opts.AllowedSpecial = *req.AllowedSpecialChars
	}
	return opts
}

// Run reads JSON-lines requests from r and writes one JSON result per
// request to w. Blank lines are skipped. Lines longer than the line limit
// get an error result and reading resumes after the next newline. Run stops
// early only when ctx is canceled or reading or writing fails.
func (d *Driver) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var summary Summary
	br := bufio.NewReaderSize(r, 64*1024)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	lineNo := 0
	for {
		raw, tooLong, err := readLine(br, d.maxLine)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("read batch input: %w", err)
		}
		lineNo++
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var res Result
		if tooLong {
			res = Result{ID: d.newID(), Error: fmt.Sprintf("request exceeds %d bytes", d.maxLine)}
		} else {
			line := strings.TrimSpace(string(raw))
			if line == "" {
				continue
			}
			res = d.handleLine(ctx, line)
		}
		summary.Lines++
		res.Line = lineNo
		if res.OK {
			summary.Succeeded++
		} else {
			summary.Failed++
			d.logger.Warn("batch request failed",
				logging.Int(logging.FieldLine, lineNo),
				logging.String(logging.FieldRequestID, res.ID),
				logging.String("reason", res.Error),
			)
		}
		if err := enc.Encode(res); err != nil {
			return summary, fmt.Errorf("write result for line %d: %w", lineNo, err)
		}
	}

	d.logger.Info("batch complete",
		logging.Int("lines", summary.Lines),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

// readLine returns the next line without its terminator. When the line
// exceeds limit bytes the rest of it is discarded and tooLong is set.
// io.EOF is returned only once no bytes remain.
func readLine(br *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return line, tooLong, err
		}
		if !tooLong {
			if len(line)+len(chunk) > limit {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func (d *Driver) handleLine(ctx context.Context, line string) Result {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		// Type mismatches still decode the remaining fields, so the caller's id may be known.
		id := strings.TrimSpace(req.ID)
		if id == "" {
			id = d.newID()
		}
		return Result{ID: id, Error: fmt.Sprintf("decode request: %v", err)}
	}
	return d.Handle(ctx, req)
}
