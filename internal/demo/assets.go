package demo

// pageCSS styles the demo page and the toast overlay, including the
// enter/exit transitions the browser client drives via data-closing.
const pageCSS = `
:root { color-scheme: light dark; font-family: system-ui, sans-serif; }
body { margin: 0 auto; max-width: 40rem; padding: 2rem 1rem; }
h1 { font-size: 1.4rem; }

.glaze-field { margin-bottom: 1rem; }
.glaze-label { display: block; font-weight: 600; margin-bottom: 0.25rem; }
.glaze-label-required { color: #c53030; margin-left: 0.15rem; }
.glaze-input, .glaze-textarea {
  width: 100%; padding: 0.5rem; border: 1px solid #aaa; border-radius: 4px;
}
.glaze-input[aria-invalid="true"] { border-color: #c53030; }
.glaze-field-error { color: #c53030; font-size: 0.85rem; margin: 0.25rem 0 0; }
.glaze-checkbox-label { display: flex; gap: 0.4rem; align-items: center; }

.controls { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 1.5rem; }
.controls button { padding: 0.5rem 0.9rem; border-radius: 4px; cursor: pointer; }

.glaze-toast-region { gap: 0.5rem; z-index: 1000; }
.glaze-toast {
  pointer-events: auto;
  min-width: 16rem; max-width: 24rem;
  padding: 0.75rem 1rem; border-radius: 6px;
  background: #2d3748; color: #fff;
  box-shadow: 0 4px 12px rgba(0,0,0,0.25);
  opacity: 1; transform: translateY(0);
  transition: opacity 150ms ease, transform 150ms ease;
}
.glaze-toast[data-status="success"] { background: #2f855a; }
.glaze-toast[data-status="error"] { background: #c53030; }
.glaze-toast[data-status="warning"] { background: #b7791f; }
.glaze-toast[data-status="info"] { background: #2b6cb0; }
.glaze-toast[data-closing="true"] { opacity: 0; transform: translateY(-0.5rem); }
`

// clientJS is the thin browser client. It mirrors snapshot frames into the
// region containers and reports exit-animation completion back over the
// socket so the server can drop closing toasts.
const clientJS = `
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  var exited = {};

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.op !== "snapshot") return;

    msg.regions.forEach(function (region) {
      var el = document.querySelector(
        '.glaze-toast-region[data-position="' + region.position + '"]');
      if (!el) return;

      el.innerHTML = region.toasts.map(function (t) { return t.html; }).join("");

      region.toasts.forEach(function (t) {
        if (!t.closing || exited[t.id]) return;
        exited[t.id] = true;
        setTimeout(function () {
          ws.send(JSON.stringify({ op: "exited", id: t.id }));
          delete exited[t.id];
        }, 180);
      });
    });
  };

  function send(cmd) { ws.send(JSON.stringify(cmd)); }

  document.addEventListener("click", function (ev) {
    var btn = ev.target.closest("button[data-op]");
    if (!btn) return;
    var cmd = { op: btn.dataset.op };
    if (btn.dataset.message) cmd.message = btn.dataset.message;
    if (btn.dataset.position) cmd.position = btn.dataset.position;
    if (btn.dataset.status) cmd.status = btn.dataset.status;
    if (btn.dataset.duration) cmd.duration_ms = parseInt(btn.dataset.duration, 10);
    send(cmd);
  });
})();
`
