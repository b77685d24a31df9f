package rod

// TestHTML templates for testing
const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	InteractiveHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="btn">Click Me</button>
	<div id="result"></div>
	<script>
		document.getElementById('btn').addEventListener('click', function() {
			document.getElementById('result').textContent = 'Clicked!';
		});
	</script>
</body>
</html>`

	TextHTML = `<!DOCTYPE html>
<html>
<body>
	<p>Matrix Calculus overview</p>
	<div class="card" id="first" onclick="document.getElementById('out').textContent = 'first'">
		<span class="icon"></span><h3>Matrix</h3>
	</div>
	<div class="card" id="second" onclick="document.getElementById('out').textContent = 'second'">
		<h3>Matrix</h3>
	</div>
	<div id="out"></div>
</body>
</html>`

	RoleHTML = `<!DOCTYPE html>
<html>
<body>
	<nav>
		<button id="decoy" style="display: none">Gaussian Elimination</button>
		<button id="tab" role="tab">Gaussian Elimination</button>
		<button id="real">Gaussian Elimination</button>
		<div role="button" id="div-btn" aria-label="Close dialog">x</div>
		<input type="submit" id="submit" value="Send" />
	</nav>
	<h2 id="stale-heading" style="visibility: hidden">Gaussian Elimination</h2>
	<h2 id="heading">Gaussian Elimination</h2>
	<div role="heading" aria-level="3" id="aria-heading">Notes</div>
	<span id="out"></span>
	<script>
		document.getElementById('real').addEventListener('click', function() {
			document.getElementById('out').textContent = 'real';
		});
		document.getElementById('decoy').addEventListener('click', function() {
			document.getElementById('out').textContent = 'decoy';
		});
		document.getElementById('tab').addEventListener('click', function() {
			document.getElementById('out').textContent = 'tab';
		});
	</script>
</body>
</html>`

	VisibilityHTML = `<!DOCTYPE html>
<html>
<body>
	<h1 id="shown">Shown</h1>
	<h1 id="transparent" style="opacity: 0">Transparent</h1>
	<h1 id="offscreen" style="position: absolute; left: -9999px">Offscreen</h1>
	<h1 id="hidden" style="visibility: hidden">Hidden</h1>
	<div style="display: none"><h1 id="collapsed">Collapsed</h1></div>
	<h1 id="late" style="opacity: 0">Late</h1>
	<script>
		setTimeout(function() { document.getElementById('late').style.opacity = '1'; }, 300);
	</script>
</body>
</html>`

	DelayedHTML = `<!DOCTYPE html>
<html>
<body>
	<div id="root"></div>
	<script>
		setTimeout(function() {
			document.getElementById('root').innerHTML = '<h2>Loaded</h2>';
		}, 300);
	</script>
</body>
</html>`

	// Заголовок перемонтируется: скрытый узел заменяется новым видимым.
	RemountHTML = `<!DOCTYPE html>
<html>
<body>
	<main id="view"><h2 style="display: none">Gaussian Elimination</h2></main>
	<script>
		setTimeout(function() {
			document.getElementById('view').innerHTML = '<h2>Gaussian Elimination</h2>';
		}, 300);
	</script>
</body>
</html>`
)
