package catalog

import "github.com/zuucrates/cargo-configure/internal/domain"

const (
	allow = domain.SeverityAllow
	warn  = domain.SeverityWarn
	deny  = domain.SeverityDeny
)

// definitions is the lint table. Order here is the order of every
// generated profile file.
var definitions = []Definition{
	{
		ID:          "absolute_paths",
		Description: "Checks for usage of items through absolute paths, like std::env::current_dir.",
		WhatsBad: "Many codebases have their own style when it comes to importing, but one that is seldom used is using absolute paths everywhere.\n\n" +
			"This is generally considered unidiomatic, and you should add a use statement.\n\n" +
			"The default maximum segments (2) is pretty strict, you may want to increase this in clippy.toml.\n" +
			"Note: One exception to this is code from macro expansion - this does not lint such cases, as using absolute paths is the proper way of referencing items in one.",
		KnownProblems:  "There are currently a few cases which are not caught by this lint:\nMacro calls. e.g. path::to::macro!()\nDerive macros. e.g. #[derive(path::to::macro)]\nAttribute macros. e.g. #[path::to::macro]",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("absolute_paths"),
		Novice:         allow, Expert: warn, Master: deny,
	},
	{
		ID:             "absurd_extreme_comparisons",
		Description:    "Checks for comparisons where one side of the relation is either the minimum or maximum value for its type and warns if it involves a case that is always true or always false.",
		WhatsBad:       "An expression like min <= x may misleadingly imply that it is possible for x to be less than the minimum. Expressions like max < x are probably mistakes.",
		KnownProblems:  "For usize the size of the current compile target will be assumed (e.g., 64 bits on 64 bit systems). This means code that uses such a comparison to detect target pointer width will trigger this lint. One can use mem::sizeof and compare its value or conditional compilation attributes like #[cfg(target_pointer_width = \"64\")] .. instead.",
		ClippySeverity: deny,
		Group:          domain.GroupCorrectness,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("absurd_extreme_comparisons"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:             "alloc_instead_of_core",
		Description:    "Finds items imported through alloc when available through core.",
		WhatsBad:       "Crates which have no_std compatibility and may optionally require alloc may wish to ensure types are imported from core to ensure disabling alloc does not cause the crate to fail to compile. This lint is also useful for crates migrating to become no_std compatible.",
		KnownProblems:  "The lint is only partially aware of the required MSRV for items that were originally in std but moved to core.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("alloc_instead_of_core"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "allow_attributes",
		Description:    "Checks for usage of the #[allow] attribute and suggests replacing it with the #[expect] attribute.",
		WhatsBad:       "#[expect] attributes suppress the lint emission, but emit a warning, if the expectation is unfulfilled. This can be useful to be notified when the lint is no longer triggered.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("allow_attributes"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "allow_attributes_without_reason",
		Description:    "Checks for attributes that allow lints without a reason.",
		WhatsBad:       "Justifying each allow helps readers understand the reasoning, and may allow removing allow attributes if their purpose is obsolete.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("allow_attributes_without_reason"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "almost_complete_range",
		Description:    "Checks for ranges which almost include the entire range of letters from 'a' to 'z' or digits from '0' to '9', but don't because they're a half open range.",
		WhatsBad:       "This ('a'..'z') is almost certainly a typo meant to include all letters.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("almost_complete_range"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "almost_swapped",
		Description:    "Checks for foo = bar; bar = foo sequences.",
		WhatsBad:       "This looks like a failed attempt to swap.",
		ClippySeverity: deny,
		Group:          domain.GroupCorrectness,
		Applicability:  domain.ApplicabilityMaybeIncorrect,
		Issue:          issues("almost_swapped"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:             "approx_constant",
		Description:    "Checks for floating point literals that approximate constants which are defined in std::f32::consts or std::f64::consts, respectively, suggesting to use the predefined constant.",
		WhatsBad:       "Usually, the definition in the standard library is more precise than what people come up with. If you find that your definition is actually more precise, please file a Rust issue.",
		ClippySeverity: deny,
		Group:          domain.GroupCorrectness,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("approx_constant"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:             "arc_with_non_send_sync",
		Description:    "This lint warns when you use Arc with a type that does not implement Send or Sync.",
		WhatsBad:       "Arc<T> is a thread-safe Rc<T> and guarantees that updates to the reference counter use atomic operations. To send an Arc<T> across thread boundaries and share ownership between multiple threads, T must be both Send and Sync, so either T should be made Send + Sync or a Rc should be used instead of an Arc.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("arc_with_non_send_sync"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "arithmetic_side_effects",
		Description:    "Checks any kind of arithmetic operation of any type.",
		WhatsBad:       "For integers, overflow will trigger a panic in debug builds or wrap the result in release mode; division by zero will cause a panic in either mode. As a result, it is desirable to explicitly call checked, wrapping or saturating arithmetic methods.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("arithmetic_side_effects"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:          "as_conversions",
		Description: "Checks for usage of as conversions.",
		WhatsBad: "The as conversions will perform many kinds of conversions, including silently lossy conversions and dangerous coercions.\n\n" +
			"There are cases when it makes sense to use as, so the lint is Allow by default.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("as_conversions"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "as_underscore",
		Description:    "Checks for the usage of as _ conversion using inferred type.",
		WhatsBad:       "The conversion might include lossy conversion or a dangerous cast that might go undetected due to the type being inferred.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("as_underscore"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "as_ptr_cast_mut",
		Description:    "Checks for the result of a &self-taking as_ptr being cast to a mutable pointer.",
		WhatsBad:       "Since as_ptr takes a &self, the pointer won't have write permissions unless interior mutability is used, making it unlikely that having it as a mutable pointer is correct.",
		ClippySeverity: allow,
		Group:          domain.GroupNursery,
		Applicability:  domain.ApplicabilityMaybeIncorrect,
		Issue:          issues("as_ptr_cast_mut"),
		Novice:         allow, Expert: warn, Master: deny,
	},
	{
		ID:             "assertions_on_constants",
		Description:    "Checks for assert!(true) and assert!(false) calls.",
		WhatsBad:       "Will be optimized out by the compiler or should probably be replaced by a panic!() or unreachable!().",
		ClippySeverity: warn,
		Group:          domain.GroupStyle,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("assertions_on_constants"),
		Novice:         warn, Expert: deny, Master: deny,
	},
	{
		ID:             "assertions_on_result_states",
		Description:    "Checks for assert!(r.is_ok()) or assert!(r.is_err()) calls.",
		WhatsBad:       "This form of assertion does not show any of the information present in the Result other than which variant it isn't.",
		KnownProblems:  "The suggested replacement decreases the readability of code and log output.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("assertions_on_result_states"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "assign_op_pattern",
		Description:    "Checks for a = a op b or a = b commutative_op a patterns.",
		WhatsBad:       "These can be written as the shorter a op= b.",
		KnownProblems:  "While forbidden by the spec, OpAssign traits may have implementations that differ from the regular Op impl.",
		ClippySeverity: warn,
		Group:          domain.GroupStyle,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("assign_op_pattern"),
		Novice:         warn, Expert: deny, Master: deny,
	},
	{
		ID:             "assigning_clones",
		Description:    "Checks for code like foo = bar.clone();",
		WhatsBad:       "Custom Clone::clone_from() or ToOwned::clone_into implementations allow the objects to share resources and therefore avoid allocations.",
		ClippySeverity: allow,
		Group:          domain.GroupPedantic,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("assigning_clones"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "async_yields_async",
		Description:    "Checks for async blocks that yield values of types that can themselves be awaited.",
		WhatsBad:       "An await is likely missing.",
		ClippySeverity: deny,
		Group:          domain.GroupCorrectness,
		Applicability:  domain.ApplicabilityMaybeIncorrect,
		Issue:          issues("async_yields_async"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "await_holding_invalid_type",
		Description:    "Allows users to configure types which should not be held across await suspension points.",
		WhatsBad:       "There are some types which are perfectly safe to use concurrently from a memory access perspective, but that will cause bugs at runtime if they are held in such a way.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("await_holding_invalid_type"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:          "await_holding_lock",
		Description: "Checks for calls to await while holding a non-async-aware MutexGuard.",
		WhatsBad: "The Mutex types found in std::sync and parking_lot are not designed to operate in an async context across await points.\n\n" +
			"There are two potential solutions. One is to use an async-aware Mutex type. Many asynchronous foundation crates provide such a Mutex type. The other solution is to ensure the mutex is unlocked before calling await, either by introducing a scope or an explicit call to Drop::drop.",
		KnownProblems:  "Will report false positive for explicitly dropped guards (#6446). A workaround for this is to wrap the .lock() call in a block instead of explicitly dropping the guard.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("await_holding_lock"),
		Novice:         warn, Expert: deny, Master: deny,
	},
	{
		ID:             "await_holding_refcell_ref",
		Description:    "Checks for calls to await while holding a RefCell, Ref, or RefMut.",
		WhatsBad:       "RefCell refs only check for exclusive mutable access at runtime. Holding a RefCell ref across an await suspension point risks panics from a mutable ref shared while other refs are outstanding.",
		KnownProblems:  "Will report false positive for explicitly dropped refs (#6353). A workaround for this is to wrap the .borrow[_mut]() call in a block instead of explicitly dropping the ref.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("await_holding_refcell_ref"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:          "bad_bit_mask",
		Description: "Checks for incompatible bit masks in comparisons.",
		WhatsBad: "If the bits that the comparison cares about are always set to zero or one by the bit mask, the comparison is constant true or false (depending on mask, compared value, and operators).\n\n" +
			"So the code is actively misleading, and the only reason someone would write this intentionally is to win an underhanded Rust contest or create a test-case for this lint.",
		ClippySeverity: deny,
		Group:          domain.GroupCorrectness,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("bad_bit_mask"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:             "big_endian_bytes",
		Description:    "Checks for the usage of the to_be_bytes method and/or the function from_be_bytes.",
		WhatsBad:       "To ensure use of little-endian or the target's endianness rather than big-endian.",
		ClippySeverity: allow,
		Group:          domain.GroupRestriction,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("big_endian_bytes"),
		Novice:         allow, Expert: warn, Master: warn,
	},
	{
		ID:             "blanket_clippy_restriction_lints",
		Description:    "Checks for warn/deny/forbid attributes targeting the whole clippy::restriction category.",
		WhatsBad:       "Restriction lints sometimes are in contrast with other lints or even go against idiomatic rust. These lints should only be enabled on a lint-by-lint basis and with careful consideration.",
		ClippySeverity: warn,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("blanket_clippy_restriction_lints"),
		Novice:         warn, Expert: deny, Master: deny,
	},
	{
		ID:             "blocks_in_conditions",
		Description:    "Checks for if and match conditions that use blocks containing an expression, statements or conditions that use closures with blocks.",
		WhatsBad:       "Style, using blocks in the condition makes it hard to read.",
		ClippySeverity: warn,
		Group:          domain.GroupStyle,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("blocks_in_conditions"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "bool_comparison",
		Description:    "Checks for expressions of the form x == true, x != true and order comparisons such as x < true (or vice versa) and suggest using the variable directly.",
		WhatsBad:       "Unnecessary code.",
		ClippySeverity: warn,
		Group:          domain.GroupComplexity,
		Applicability:  domain.ApplicabilityMachineApplicable,
		Issue:          issues("bool_comparison"),
		Novice:         warn, Expert: warn, Master: deny,
	},
	{
		ID:             "box_collection",
		Description:    "Checks for usage of Box<T> where T is a collection such as Vec, String or HashMap.",
		WhatsBad:       "Collections already keep their contents in a separate allocation on the heap. So if you Box them, you just add another level of indirection without any benefit whatsoever.",
		ClippySeverity: warn,
		Group:          domain.GroupPerf,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("box_collection"),
		Novice:         warn, Expert: deny, Master: deny,
	},
	{
		ID:             "rc_clone_in_vec_init",
		Description:    "Checks for reference-counted pointers (Arc, Rc, rc::Weak, and sync::Weak) in vec![elem; len].",
		WhatsBad:       "This will create elem once and clone it len times - doing so with Arc/Rc/Weak is a bit misleading, as it will create references to the same pointer, rather than different instances.",
		ClippySeverity: allow,
		Group:          domain.GroupSuspicious,
		Applicability:  domain.ApplicabilityHasPlaceholders,
		Issue:          issues("rc_clone_in_vec_init"),
		Novice:         deny, Expert: deny, Master: deny,
	},
	{
		ID:             "redundant_feature_names",
		Description:    "Checks for feature names with prefix use-, with- or suffix -support.",
		WhatsBad:       "These prefixes and suffixes have no significant meaning.",
		ClippySeverity: allow,
		Disabled:       true,
		Group:          domain.GroupPedantic,
		Applicability:  domain.ApplicabilityUnspecified,
		Issue:          issues("redundant_feature_names"),
		Novice:         allow, Expert: allow, Master: warn,
	},
	{
		ID:                "needless_pass_by_ref_mut",
		Description:       "Checks if a &mut argument is actually used to modify its target.",
		WhatsBad:          "You can use a & argument instead, which is more readable and does not force callers to hold a mutable borrow.",
		KnownProblems:     "This lint is still in the nursery and may report false positives for trait implementations.",
		ClippySeverity:    allow,
		UseClippySeverity: true,
		Group:             domain.GroupNursery,
		Applicability:     domain.ApplicabilityMaybeIncorrect,
		Issue:             issues("needless_pass_by_ref_mut"),
		Novice:            allow, Expert: warn, Master: warn,
	},
}
