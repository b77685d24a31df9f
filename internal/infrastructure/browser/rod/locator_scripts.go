package rod

// Скрипты выполняются в контексте страницы через rod.Eval.
// Локатор разрешается заново на каждой попытке: узел, заменённый приложением
// (перемонтирование, innerHTML), не держит ожидание до дедлайна.

const locatorHelpers = `
	const norm = (s) => (s || '').replace(/\s+/g, ' ').trim();

	// rendered: есть в дереве доступности (не display:none, не visibility:hidden, есть layout box).
	const rendered = (el) => {
		if (!el.isConnected) return false;
		const style = window.getComputedStyle(el);
		if (style.visibility === 'hidden' || style.visibility === 'collapse') return false;
		return el.getClientRects().length > 0;
	};

	const visible = (el) => {
		if (!rendered(el)) return false;
		for (let n = el; n && n.nodeType === 1; n = n.parentElement) {
			const s = window.getComputedStyle(n);
			if (s.display === 'none' || parseFloat(s.opacity) === 0) return false;
		}
		const box = el.getBoundingClientRect();
		if (box.width === 0 || box.height === 0) return false;
		if (box.right + window.scrollX <= 0 || box.bottom + window.scrollY <= 0) return false;
		return true;
	};

	const byText = (text, exact) => {
		const want = exact ? norm(text) : norm(text).toLowerCase();
		const contains = (got) => exact ? got.includes(want) : got.toLowerCase().includes(want);
		const equals = (got) => exact ? got === want : true;
		const skip = new Set(['SCRIPT', 'STYLE', 'NOSCRIPT', 'TEMPLATE', 'HEAD', 'TITLE']);

		const visit = (el) => {
			if (skip.has(el.tagName)) return null;
			const got = norm(el.textContent);
			if (!contains(got)) return null;
			for (const child of el.children) {
				const hit = visit(child);
				if (hit) return hit;
			}
			return equals(got) ? el : null;
		};
		return document.body ? visit(document.body) : null;
	};

	const implicitRoles = {
		button: 'button, input[type=button], input[type=submit], input[type=reset], input[type=image], summary',
		heading: 'h1, h2, h3, h4, h5, h6',
		link: 'a[href], area[href]',
		textbox: 'input:not([type]), input[type=text], input[type=email], input[type=tel], input[type=url], input[type=search], textarea',
		checkbox: 'input[type=checkbox]',
		radio: 'input[type=radio]',
		img: 'img[alt]:not([alt=""])',
		list: 'ul, ol',
		listitem: 'li',
		navigation: 'nav',
		main: 'main',
	};

	const accessibleName = (el) => {
		const labelledBy = el.getAttribute('aria-labelledby');
		if (labelledBy) {
			const text = norm(labelledBy.split(/\s+/).map((id) => {
				const ref = document.getElementById(id);
				return ref ? ref.textContent : '';
			}).join(' '));
			if (text) return text;
		}
		const aria = norm(el.getAttribute('aria-label'));
		if (aria) return aria;
		if (el.tagName === 'IMG' || (el.tagName === 'INPUT' && el.type === 'image')) {
			const alt = norm(el.getAttribute('alt'));
			if (alt) return alt;
		}
		if (el.tagName === 'INPUT' && ['button', 'submit', 'reset'].includes(el.type)) {
			return norm(el.value);
		}
		if (el.labels && el.labels.length) {
			return norm(Array.from(el.labels).map((l) => l.textContent).join(' '));
		}
		const text = norm(el.textContent);
		if (text) return text;
		return norm(el.getAttribute('title'));
	};

	// includeHidden=false повторяет дерево доступности: скрытые элементы не считаются кандидатами.
	const byRole = (role, name, exact, includeHidden) => {
		const selector = (implicitRoles[role] ? implicitRoles[role] + ', ' : '') + '[role~="' + role + '"]';
		const want = norm(name);
		for (const el of document.querySelectorAll(selector)) {
			const explicit = norm(el.getAttribute('role'));
			if (explicit && explicit.split(' ')[0] !== role) continue;
			if (el.closest('[aria-hidden="true"]')) continue;
			if (!includeHidden && !rendered(el)) continue;
			if (!want) return el;
			const got = accessibleName(el);
			if (exact ? got === want : got.toLowerCase().includes(want.toLowerCase())) return el;
		}
		return null;
	};

	const resolve = (by, role, value, exact, includeHidden) => {
		switch (by) {
		case 'text':
			return byText(value, exact);
		case 'role':
			return byRole(role, value, exact, includeHidden);
		case 'css':
			return document.querySelector(value);
		case 'xpath':
			return document.evaluate(value, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue;
		}
		return null;
	};
`

// findVisibleJS возвращает первый кандидат, если он видим, иначе null (rod повторит вызов).
const findVisibleJS = `function (by, role, value, exact) {` + locatorHelpers + `
	const el = resolve(by, role, value, exact, false);
	return el && visible(el) ? el : null;
}`

// existsJS отличает "не найден" от "не виден" после истечения ожидания.
const existsJS = `function (by, role, value, exact) {` + locatorHelpers + `
	return resolve(by, role, value, exact, true) !== null;
}`
