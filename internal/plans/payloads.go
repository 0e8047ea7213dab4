package plans

// Content payloads inserted by the built-in plans. The engine treats
// these as opaque text; they are listed here so each plan file reads as
// pure anchor/guard configuration.

// clientBoxCSS is the style block for the Add Client section boxes.
const clientBoxCSS = `
<style>
/* Add Client section: clear delineation between Header vs Mentions */
.client-box{
  border:1px solid #d9d9d9;
  border-radius:10px;
  padding:12px 14px;
  margin:12px 0;
}
.client-box-title{
  font-weight:700;
  color:#222;
  margin:0 0 10px 0;
}
.client-box-header{ background:#f7fbff; }
.client-box-mentions{ background:#fbfbfb; }
.client-box .hint{
  font-size:12px;
  color:#666;
  margin-top:-6px;
  margin-bottom:10px;
}
</style>

`

// headerBoxOpen opens the Header box. The data-add-client-boxes
// attribute doubles as the plan's idempotency marker.
const headerBoxOpen = `
<div class="client-box client-box-header" data-add-client-boxes="1">
  <div class="client-box-title">Header (CMS header)</div>
  <div class="hint">These settings affect the client name shown in the CMS header.</div>
`

// mentionsBoxOpen closes the Header box and opens the Mentions box.
const mentionsBoxOpen = `
</div>

<div class="client-box client-box-mentions">
  <div class="client-box-title">Mentions (review/body content)</div>
  <div class="hint">These settings affect highlights inside the review/body text (not the CMS header).</div>
`

// mentionsBoxClose closes the Mentions box.
const mentionsBoxClose = "\n</div>\n\n"

// loadFunction is the restored load() definition for options.js.
const loadFunction = `
  // ---------------------------------------------------------------------------
  // Load / Save
  // ---------------------------------------------------------------------------
  function load() {
    chrome.storage.local.get(["dictionary"], (result) => {
      currentDict = result.dictionary || { ignoreList: [], categories: [], clients: [] };
      if (!Array.isArray(currentDict.ignoreList)) currentDict.ignoreList = [];
      if (!Array.isArray(currentDict.categories)) currentDict.categories = [];
      if (!Array.isArray(currentDict.clients)) currentDict.clients = [];

      renderIgnoreList();
      renderClients();
      renderCategories();
    });
  }

`

// saveDictionaryFunction is the restored saveDictionary() definition.
const saveDictionaryFunction = `
  function saveDictionary(msg) {
    chrome.storage.local.set({ dictionary: currentDict }, () => {
      if (msg) showMsg(msg, "success");
    });
  }

`
