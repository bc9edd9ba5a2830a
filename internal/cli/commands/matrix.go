// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/internal/cli/config"
	"github.com/katalvlaran/lvlalg/linalg"
)

// openWorkspace reads the input named by arg and binds it to an engine built
// from the configuration in cmd's context.
func openWorkspace(cmd *cobra.Command, arg string) (workspace, *config.Config, error) {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	var in *Input
	if arg != "" {
		var err error
		if in, err = readInputArg(cmd.InOrStdin(), arg); err != nil {
			return nil, nil, err
		}
	}
	ws, err := newWorkspace(cfg, in, config.GetLogger(ctx))
	if err != nil {
		return nil, nil, err
	}

	return ws, cfg, nil
}

// matrixCommand wires the shared read-run-render path around run.
func matrixCommand(use, short, long string, run func(ws workspace) (*Report, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <input.yaml|->",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := openWorkspace(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := run(ws)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), rep, cfg.Output)
		},
	}
}

func sideOf(left bool) linalg.Side {
	if left {
		return linalg.SideLeft
	}
	return linalg.SideRight
}

// NewRankCommand creates the rank command.
func NewRankCommand() *cobra.Command {
	return matrixCommand("rank", "Rank of A", `Print rank(A). Float domains use the configured rank tolerance.`,
		func(ws workspace) (*Report, error) { return ws.Rank() })
}

// NewDetCommand creates the det command.
func NewDetCommand() *cobra.Command {
	return matrixCommand("det", "Determinant of square A", `Print det(A); the determinant of a 0×0 matrix is 1.`,
		func(ws workspace) (*Report, error) { return ws.Determinant() })
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand() *cobra.Command {
	return matrixCommand("inverse", "Inverse of square A", `Print A⁻¹, or invertible=false when A is singular.

Over ZZ the inverse exists only when det(A) = ±1.`,
		func(ws workspace) (*Report, error) { return ws.Inverse() })
}

// NewMultCommand creates the mult command.
func NewMultCommand() *cobra.Command {
	return matrixCommand("mult", "Product A·B", `Print the product A·B.`,
		func(ws workspace) (*Report, error) { return ws.Mult() })
}

// NewNullSpaceCommand creates the nullspace command.
func NewNullSpaceCommand() *cobra.Command {
	var left, echelon bool
	cmd := matrixCommand("nullspace", "Null space basis of A", `Print a basis of {x : A·x = 0} as columns, or with --left a basis of
{x : x·A = 0} as rows. --echelon reads the right null space off the
echelon form of A instead (float domains).`,
		func(ws workspace) (*Report, error) { return ws.NullSpace(sideOf(left), echelon) })
	cmd.Flags().BoolVar(&left, "left", false, "left null space (rows x with x·A = 0)")
	cmd.Flags().BoolVar(&echelon, "echelon", false, "right null space from the echelon form")
	cmd.MarkFlagsMutuallyExclusive("left", "echelon")

	return cmd
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var left, assume, square bool
	cmd := matrixCommand("solve", "Solve A·X = B", `Print one solution X of A·X = B, or with --left of X·A = B. An
inconsistent system prints consistent=false.

--assume-invertible lets float domains skip the rank-revealing path for
square A. --square requires square A and reports singular A instead of
looking for a particular solution.`,
		func(ws workspace) (*Report, error) { return ws.Solve(sideOf(left), assume, square) })
	cmd.Flags().BoolVar(&left, "left", false, "solve X·A = B")
	cmd.Flags().BoolVar(&assume, "assume-invertible", false, "A is square and invertible")
	cmd.Flags().BoolVar(&square, "square", false, "square-system solve through LU")
	cmd.MarkFlagsMutuallyExclusive("left", "square")

	return cmd
}

// NewProfileCommand creates the profile command.
func NewProfileCommand() *cobra.Command {
	var columns bool
	cmd := matrixCommand("profile", "Rank profile of A", `Print the lexicographically smallest indices of rank(A) linearly
independent rows (or columns with --columns).`,
		func(ws workspace) (*Report, error) {
			side := linalg.ProfileRows
			if columns {
				side = linalg.ProfileColumns
			}
			return ws.Profile(side)
		})
	cmd.Flags().BoolVar(&columns, "columns", false, "column rank profile")

	return cmd
}

// NewAddMulCommand creates the addmul command.
func NewAddMulCommand() *cobra.Command {
	var subtract bool
	cmd := matrixCommand("addmul", "Fused C + A·B", `Print C + A·B, or C − A·B with --subtract.`,
		func(ws workspace) (*Report, error) { return ws.AddMul(subtract) })
	cmd.Flags().BoolVar(&subtract, "subtract", false, "compute C − A·B")

	return cmd
}

// NewLUCommand creates the lu command.
func NewLUCommand() *cobra.Command {
	return matrixCommand("lu", "Pivoted LU factorization of square A", `Print unit lower L, upper U and the row permutation perm, with row i of
L·U equal to row perm[i] of A.`,
		func(ws workspace) (*Report, error) { return ws.LU() })
}

// NewEigenCommand creates the eigen command.
func NewEigenCommand() *cobra.Command {
	var hermitian, vectors bool
	cmd := matrixCommand("eigen", "Eigenvalues of square A", `Print the eigenvalues of A (complex), and with --vectors unit-norm
eigenvectors as columns. --hermitian treats A as symmetric / Hermitian
(only its upper triangle is read) and prints real eigenvalues ascending.`,
		func(ws workspace) (*Report, error) { return ws.Eigen(hermitian, vectors) })
	cmd.Flags().BoolVar(&hermitian, "hermitian", false, "A is self-adjoint")
	cmd.Flags().BoolVar(&vectors, "vectors", false, "also print eigenvectors")

	return cmd
}

// NewLeastSquaresCommand creates the lstsq command.
func NewLeastSquaresCommand() *cobra.Command {
	var fullRank bool
	cmd := matrixCommand("lstsq", "Least-squares solution of A·X ≈ B", `Print the minimum-norm X minimizing ‖A·X − B‖. --full-rank uses QR / LQ
and fails (ok=false) on rank-deficient A.`,
		func(ws workspace) (*Report, error) { return ws.LeastSquares(fullRank) })
	cmd.Flags().BoolVar(&fullRank, "full-rank", false, "A has full rank")

	return cmd
}

// NewSVDCommand creates the svd command.
func NewSVDCommand() *cobra.Command {
	var name string
	cmd := matrixCommand("svd", "Singular value decomposition of A", `Print sigma (descending), U and Vᵀ with A = U·diag(sigma)·Vᵀ.`,
		func(ws workspace) (*Report, error) {
			st, ok := linalg.ParseSVDStrategy(name)
			if !ok {
				return nil, fmt.Errorf("unknown SVD strategy %q (want standard|jacobi): %w", name, ErrInput)
			}
			return ws.SVD(st)
		})
	cmd.Flags().StringVar(&name, "strategy", linalg.SVDStandard.String(), "standard|jacobi")
	_ = cmd.RegisterFlagCompletionFunc("strategy", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"standard", "jacobi"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// NewCapsCommand creates the caps command.
func NewCapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "caps [input.yaml|-]",
		Short: "List the operations supported by a domain",
		Long: `List every operation the configured domain supports, with its sides.
When an input document is given, its domain and prime take precedence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			ws, cfg, err := openWorkspace(cmd, arg)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), ws.Capabilities(), cfg.Output)
		},
	}
}

// All returns every lvlalg subcommand except version.
func All() []*cobra.Command {
	return []*cobra.Command{
		NewRankCommand(),
		NewDetCommand(),
		NewInverseCommand(),
		NewMultCommand(),
		NewNullSpaceCommand(),
		NewSolveCommand(),
		NewProfileCommand(),
		NewAddMulCommand(),
		NewLUCommand(),
		NewEigenCommand(),
		NewLeastSquaresCommand(),
		NewSVDCommand(),
		NewCapsCommand(),
	}
}
