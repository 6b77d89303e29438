package build

import (
	"log/slog"

	"bytelit/pkg/asm"
	"bytelit/pkg/output"
)

// Builder creates a Driver.
type Builder struct {
	source    Source
	sink      Sink
	assembler *asm.Assembler
	logger    *slog.Logger
}

// WithSource sets where input text is read from.
func (b Builder) WithSource(s Source) Builder {
	b.source = s
	return b
}

// WithSink sets where the binary is written.
func (b Builder) WithSink(s Sink) Builder {
	b.sink = s
	return b
}

// WithAssembler sets the assembler, e.g. one configured for strict words.
func (b Builder) WithAssembler(a *asm.Assembler) Builder {
	b.assembler = a
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(l *slog.Logger) Builder {
	b.logger = l
	return b
}

// Build creates a driver. Unset parts default to the host file system, a
// plain assembler and a discarding logger.
func (b Builder) Build() *Driver {
	d := &Driver{
		source:    b.source,
		sink:      b.sink,
		assembler: b.assembler,
		logger:    b.logger,
	}

	if d.source == nil {
		d.source = FileSource{}
	}
	if d.sink == nil {
		d.sink = output.AtomicSink{}
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	if d.assembler == nil {
		d.assembler = asm.NewAssembler(asm.WithLogger(d.logger))
	}

	return d
}
