package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/arrays/pkg/array"
	"github.com/ajitpratap0/arrays/pkg/arrowbridge"
	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/json"
	"github.com/ajitpratap0/arrays/pkg/metrics"
)

// Operations understood by eval.
const (
	opRender   = "render"
	opLen      = "len"
	opGet      = "get"
	opShuffle  = "shuffle"
	opDistinct = "distinct"
	opToMap    = "to-map"
	opMemory   = "memory"
)

var evalOps = []string{opRender, opLen, opGet, opShuffle, opDistinct, opToMap, opMemory}

func (a *app) newEvalCmd() *cobra.Command {
	var (
		op    string
		index int
	)

	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Run a single container operation on a document",
		Long: `Run a single container operation on a document and print the result as JSON.

Operations:
  render    print the container
  len       print the kind and length
  get       print the element at --index
  shuffle   print the container in random order (see --seed)
  distinct  print the first occurrence of every element
  to-map    print a list of [key, value] pairs as an object
  memory    print the raw storage size of a scalar container

Example:
  arrays eval values.json --op get --index 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(evalOps, op) {
				return usageError("unknown operation %q", op)
			}
			c, err := a.read(args[0], cmd)
			if err != nil {
				return err
			}
			result, err := a.eval(c, op, index)
			if err != nil {
				return err
			}
			return a.write(result)
		},
	}

	cmd.Flags().StringVar(&op, "op", opRender, "Operation to run")
	cmd.Flags().IntVar(&index, "index", 0, "Element index for get")
	return cmd
}

func (a *app) eval(c array.Container, op string, index int) (result interface{}, err error) {
	timer := metrics.NewTimer(op)
	n := c.Len()
	defer func() { a.observe(timer, n, err) }()

	switch op {
	case opLen:
		return map[string]interface{}{"kind": c.Kind().String(), "len": c.Len()}, nil

	case opGet:
		n = 1
		v, err := array.At(c, index)
		if err != nil {
			return nil, err
		}
		return v, nil

	case opShuffle:
		s, ok := c.(interface{ Shuffle(r *rand.Rand) })
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeInternal, "%T cannot be shuffled", c)
		}
		s.Shuffle(a.rng())
		return c, nil

	case opDistinct:
		return array.Distinct(array.FromSlice(array.Values(c))), nil

	case opToMap:
		m, err := array.ToMapAny(c)
		if err != nil {
			return nil, err
		}
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, nil

	case opMemory:
		mu, ok := c.(interface{ MemoryUsage() int64 })
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "memory usage is only defined for scalar kinds, not %s", c.Kind()).
				WithDetail("kind", c.Kind().String())
		}
		return map[string]interface{}{"kind": c.Kind().String(), "bytes": mu.MemoryUsage()}, nil
	}

	return c, nil
}

func (a *app) newConcatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat FILE FILE",
		Short: "Concatenate two documents into one container",
		Long: `Concatenate two documents. Both must have the same kind, except that a
scalar container joins with its boxed form (for example int32 with *int32),
provided the boxed side has no null slots.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			left, err := a.read(args[0], cmd)
			if err != nil {
				return err
			}
			right, err := a.read(args[1], cmd)
			if err != nil {
				return err
			}

			timer := metrics.NewTimer("concat")
			joined, err := array.Join(left, right)
			a.observe(timer, left.Len()+right.Len(), err)
			if err != nil {
				return err
			}

			a.log.Debug("joined containers",
				zap.String("kind", joined.Kind().String()),
				zap.Int("len", joined.Len()))
			return a.write(joined)
		},
	}
}

// equality is the result of the equal command.
type equality struct {
	Same    bool `json:"same"`
	Shallow bool `json:"shallow"`
	Deep    bool `json:"deep"`
}

func (a *app) newEqualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal FILE FILE",
		Short: "Compare two documents with shallow and deep equality",
		Long: `Compare two documents. Shallow equality compares nested lists by identity,
so two separately decoded documents with nested lists are shallow-unequal
even when deep-equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := a.read(args[0], cmd)
			if err != nil {
				return err
			}
			right, err := a.read(args[1], cmd)
			if err != nil {
				return err
			}

			timer := metrics.NewTimer("equal")
			result := equality{
				Same:    array.Same(left, right),
				Shallow: array.ShallowEqualContainers(left, right),
				Deep:    array.DeepEqualContainers(left, right),
			}
			a.observe(timer, left.Len()+right.Len(), nil)
			return a.write(result)
		},
	}
}

// Output formats understood by convert.
const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatArrow = "arrow"
)

// arrowDocument describes an Arrow array for printing.
type arrowDocument struct {
	Type      string          `json:"type"`
	Len       int             `json:"len"`
	NullCount int             `json:"null_count"`
	Values    json.RawMessage `json:"values"`
}

func (a *app) newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-encode a document as JSON, YAML or an Arrow array",
		Long: `Re-encode a document. The arrow format copies a scalar container into an
Apache Arrow array and prints its type and values; char containers become
int32 arrays.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			c, err := a.read(args[0], cmd)
			if err != nil {
				return err
			}

			timer := metrics.NewTimer("convert_" + to)
			defer func() { a.observe(timer, c.Len(), err) }()

			switch to {
			case formatJSON:
				return a.write(c)
			case formatYAML:
				data, err := json.Marshal(c)
				if err != nil {
					return errors.Wrap(err, errors.ErrorTypeData, "failed to encode container")
				}
				out, err := jsonToYAML(data)
				if err != nil {
					return errors.Wrap(err, errors.ErrorTypeData, "failed to encode YAML")
				}
				_, err = a.out.Write(out)
				return err
			case formatArrow:
				return a.writeArrow(c)
			}
			return usageError("unknown output format %q", to)
		},
	}

	cmd.Flags().StringVar(&to, "to", formatJSON, "Output format (json, yaml, arrow)")
	return cmd
}

func (a *app) writeArrow(c array.Container) error {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	arr, err := arrowbridge.ToArrowContainer(mem, c)
	if err != nil {
		return err
	}
	defer arr.Release()

	values, err := arr.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to encode arrow values")
	}
	a.log.Debug("arrow array built",
		zap.String("type", arr.DataType().String()),
		zap.Int("allocated_bytes", mem.CurrentAlloc()))

	return a.write(arrowDocument{
		Type:      arr.DataType().String(),
		Len:       arr.Len(),
		NullCount: arr.NullN(),
		Values:    values,
	})
}

func (a *app) read(path string, cmd *cobra.Command) (array.Container, error) {
	timer := metrics.NewTimer("decode")
	c, err := readDocument(path, a.cfg.Render.Kind, cmd.InOrStdin())
	n := 0
	if c != nil {
		n = c.Len()
	}
	a.observe(timer, n, err)
	if err != nil {
		return nil, err
	}

	a.log.Debug("document decoded",
		zap.String("path", path),
		zap.String("kind", c.Kind().String()),
		zap.Int("len", c.Len()))
	return c, nil
}

func (a *app) write(v interface{}) error {
	indent := ""
	if a.cfg.Render.Indent {
		indent = "  "
	}
	if err := json.MarshalToWriter(a.out, v, indent); err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to write output")
	}
	return nil
}

func (a *app) rng() *rand.Rand {
	seed := a.cfg.Render.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
