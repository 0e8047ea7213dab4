package plans

import "github.com/custodia-labs/docpatch-cli/internal/core/domain"

// AddClientBoxes wraps the Add Client section of the options page into
// two delineated boxes: Header (CMS header settings) and Mentions
// (review/body settings), injecting the supporting style block once.
func AddClientBoxes() *domain.PatchPlan {
	return &domain.PatchPlan{
		Name:         "add-client-boxes",
		Summary:      "Wrap the Add Client section into Header and Mentions boxes",
		DocumentName: "options.html",
		Guards: []domain.Guard{
			{Pattern: domain.Literal("data-add-client-boxes", "client boxes marker")},
		},
		Prerequisites: []domain.Prerequisite{
			{Pattern: domain.Literal("</head>", "closing </head> tag")},
		},
		Directives: []domain.EditDirective{
			{
				// The style block can survive a partial revert, so it
				// carries its own guard instead of relying on the
				// plan-level marker.
				Anchor:  domain.Anchor(domain.Literal("</head>", "closing </head> tag")),
				Mode:    domain.InsertBefore,
				Payload: clientBoxCSS,
				SkipIf:  &domain.Guard{Pattern: domain.Literal("client-box-header", "client box styles")},
			},
			{
				Anchor: domain.Anchor(
					domain.Regex(`(?i)\s*<label[^>]*>\s*Client Name\s*</label>\s*`, "Client Name label"),
					domain.Regex(`(?i)\s*<input[^>]*\bid="newClientPattern"\b[^>]*>\s*`, "newClientPattern input"),
				),
				Mode:    domain.InsertBefore,
				Payload: headerBoxOpen,
			},
			{
				// The primary pattern swallows the existing Mentions
				// section title, which the box opener re-renders; the
				// fallback label must stay in place, so it only anchors
				// an insertion.
				Anchor: domain.Anchor(
					domain.Regex(`(?i)\s*<div\s+class="client-section-title">\s*Mentions\s*\(review/body content\)\s*</div>\s*`, "Mentions section title"),
					domain.Pattern{
						Regexp:      regex(`(?i)\s*<label[^>]*>\s*Mentions:\s*Category\s*</label>\s*`),
						Description: "Mentions: Category label",
						Mode:        domain.InsertBefore,
					},
				),
				Mode:    domain.ReplaceSpan,
				Payload: mentionsBoxOpen,
			},
			{
				Anchor:  domain.Anchor(domain.Regex(`(?i)\s*<button[^>]*\bid="btnAddClient"\b[^>]*>`, "btnAddClient button")),
				Mode:    domain.InsertBefore,
				Payload: mentionsBoxClose,
			},
		},
	}
}
